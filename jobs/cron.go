package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

const probeTimeout = time.Minute

// ProviderProbe định nghĩa interface cho việc kiểm tra nhà cung cấp AI
type ProviderProbe interface {
	Run(ctx context.Context)
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, probe ProviderProbe, schedule string) error {
	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), probeTimeout)
		defer cancel()
		probe.Run(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Printf("Cron jobs initialized, provider probe %s", schedule)
	return nil
}
