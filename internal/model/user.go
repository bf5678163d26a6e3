package model

// swagger:model User
type User struct {
	BaseModel
	Name     string `gorm:"size:50;unique;not null" json:"name"`
	Password string `gorm:"size:100;not null" json:"-"`
}

func (User) TableName() string {
	return "users"
}
