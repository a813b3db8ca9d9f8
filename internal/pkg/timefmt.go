package pkg

import (
	"time"

	"github.com/dustin/go-humanize"
)

// ExactTimeLayout 单则推文的绝对时间格式
const ExactTimeLayout = "PM 03:04 2006年 Jan 02日"

// RelativeTime 相对时间，例如 "3 hours ago"
func RelativeTime(t time.Time) string {
	return humanize.Time(t)
}

// ExactTime 固定格式的绝对时间
func ExactTime(t time.Time) string {
	return t.Format(ExactTimeLayout)
}
