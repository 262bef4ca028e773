package db_models

type Role string

const (
	RoleWorker      Role = "worker"
	RoleTaskCreator Role = "taskCreator"
	RoleAdmin       Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleWorker, RoleTaskCreator, RoleAdmin:
		return true
	default:
		return false
	}
}

// User holds the platform-wide coin balance. The balance is signed and is
// never floored: debits may push it negative.
type User struct {
	BaseModel
	Email string  `gorm:"uniqueIndex" json:"email"`
	Name  string  `json:"name"`
	Image string  `json:"image"`
	Role  Role    `gorm:"index" json:"role"`
	Coin  float64 `json:"coin"`
}
