package holiday

import "context"

type HolidayRepository interface {
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
}
