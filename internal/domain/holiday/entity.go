package holiday

import "time"

type Holiday struct {
	ID        string
	Date      time.Time
	Name      string
	CreatedAt time.Time
}
