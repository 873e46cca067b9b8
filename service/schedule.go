package service

import (
	"time"

	"github.com/BerniceZTT/cdp_end/utils"
)

// ScheduleDailyTaskAt 每天指定时间执行任务
func ScheduleDailyTaskAt(hour, min, sec int, task func()) {
	go func() {
		for {
			now := time.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, sec, 0, now.Location())
			if now.After(next) {
				next = next.Add(24 * time.Hour)
			}
			duration := next.Sub(now)
			time.Sleep(duration)
			task()
		}
	}()
}

// RunColdLeadAging 冷线索老化任务：未活跃天数加一
func RunColdLeadAging(store *LifecycleStore) {
	utils.Logger.Info().Msg("开始执行每日冷线索老化任务...")

	count := store.AgeColdLeads()

	utils.Logger.Info().Int("coldLeads", count).Msg("冷线索老化任务完成")
}
