package booking

import (
	"time"
)

// Guest is one occupant of a booking. Exactly one guest per booking carries
// IsPrimary; legacy rows with zero guests are tolerated on read.
type Guest struct {
	ID uint `gorm:"primaryKey;autoIncrement" json:"id"`

	BookingID uint `gorm:"not null;index" json:"booking_id"`

	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Phone     *string `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IDType    *string `gorm:"type:varchar(50)" json:"id_type,omitempty"`
	IDNumber  *string `gorm:"type:varchar(100)" json:"id_number,omitempty"`
	IsPrimary bool    `gorm:"not null;default:false" json:"is_primary"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
