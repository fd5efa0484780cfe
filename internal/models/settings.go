package models

// MemberSetting stores per-member portal preferences and nutrition goals.
// One row per member, created lazily with defaults on first read.
type MemberSetting struct {
	BaseModel
	MemberID           string `gorm:"size:36;uniqueIndex" json:"memberId"`
	Theme              string `gorm:"size:20;default:'dark'" json:"theme"`
	EmailNotifications bool   `gorm:"default:true" json:"emailNotifications"`
	SMSNotifications   bool   `gorm:"default:false" json:"smsNotifications"`
	CalorieGoal        int    `gorm:"default:2200" json:"calorieGoal"`
	ProteinGoalG       int    `gorm:"default:120" json:"proteinGoalG"`
	WaterGoalMl        int    `gorm:"default:2000" json:"waterGoalMl"`

	// Relations
	Member User `gorm:"foreignKey:MemberID" json:"-"`
}

// DefaultMemberSetting returns the settings row created for a member who has
// never saved preferences.
func DefaultMemberSetting(memberID string) MemberSetting {
	return MemberSetting{
		MemberID:           memberID,
		Theme:              "dark",
		EmailNotifications: true,
		SMSNotifications:   false,
		CalorieGoal:        2200,
		ProteinGoalG:       120,
		WaterGoalMl:        2000,
	}
}
