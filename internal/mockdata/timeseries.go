package mockdata

import "ucr-mock/internal/domain"

// DateLabel 對應網站 en-US 的 { month: 'short', day: 'numeric' }
const DateLabel = "Jan 2"

// TimeSeries 產生 days 天的資料點，由舊到新，最後一點是今天。
// min > max 時自動對調。
func (g *Generator) TimeSeries(days, min, max int) []domain.TimeSeriesPoint {
	if days <= 0 {
		return []domain.TimeSeriesPoint{}
	}

	now := g.clock.Now()
	points := make([]domain.TimeSeriesPoint, days)
	for i := range points {
		day := now.AddDate(0, 0, -(days - 1 - i))
		points[i] = domain.TimeSeriesPoint{
			Date:  day.Format(DateLabel),
			Value: g.between(min, max),
		}
	}
	return points
}
