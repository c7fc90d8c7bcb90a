package service

import "time"

const (
	timeOfDayLayout = "3:04 PM"
	fullDateLayout  = "January 2, 2006"
)

// RenderCreatedAt 与 now 处于参考时区同一天时只显示时刻，否则显示完整日期
func RenderCreatedAt(createdAt, now time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	local := createdAt.In(loc)
	today := now.In(loc)

	y1, m1, d1 := local.Date()
	y2, m2, d2 := today.Date()
	if y1 == y2 && m1 == m2 && d1 == d2 {
		return local.Format(timeOfDayLayout)
	}
	return local.Format(fullDateLayout)
}
