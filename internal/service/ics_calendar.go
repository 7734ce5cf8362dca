package service

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"

	"campus-events/backend/internal/model"
)

// ── iCalendar 生成 ──────────────────────────────────────────
//
// 每个活动对应一个全天 VEVENT：
//   - UID 由 event_id 生成，订阅端据此去重更新
//   - 活动类型写入 CATEGORIES，已取消活动带 STATUS:CANCELLED
//   - 日期无法解析为 YYYY-MM-DD 的活动跳过
// ─────────────────────────────────────────────────────────────

const (
	icsProductID  = "-//campus-events//events calendar//ZH"
	icsDateLayout = "2006-01-02"
	icsUIDDomain  = "campus-events"
)

// BuildEventCalendar 生成 RFC 5545 日历文本，返回内容及被跳过的活动 ID
func BuildEventCalendar(events []model.Event, stamp time.Time) (string, []int64) {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId(icsProductID)
	cal.SetXWRCalName("校园活动")

	var skipped []int64
	for i := range events {
		e := &events[i]
		day, err := time.Parse(icsDateLayout, e.Date)
		if err != nil {
			skipped = append(skipped, e.EventID)
			continue
		}

		ve := cal.AddEvent(fmt.Sprintf("event-%d@%s", e.EventID, icsUIDDomain))
		ve.SetDtStampTime(stamp.UTC())
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		ve.SetSummary(e.Title)
		ve.SetProperty(ics.ComponentPropertyCategories, e.Type)
		if e.Cancelled {
			ve.SetStatus(ics.ObjectStatusCancelled)
		} else {
			ve.SetStatus(ics.ObjectStatusConfirmed)
		}
	}

	return cal.Serialize(), skipped
}
