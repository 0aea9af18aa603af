package app

import (
	"os"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
	"github.com/talkincode/inventorypro/internal/query"
	"github.com/talkincode/inventorypro/pkg/metrics"
	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

var cronParser = cron.NewParser(
	cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

func (a *Application) initJob() {
	loc, _ := time.LoadLocation(a.appConfig.System.Location)
	a.sched = cron.New(cron.WithLocation(loc), cron.WithParser(cronParser))

	var err error
	_, err = a.sched.AddFunc("@every 30s", func() {
		go a.SchedSystemMonitorTask()
		go a.SchedProcessMonitorTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	_, err = a.sched.AddFunc("@every 10m", func() {
		a.SchedLowStockScanTask()
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}

	a.sched.Start()
}

// SchedSystemMonitorTask system monitor
func (a *Application) SchedSystemMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	// Collect CPU usage
	_cpuuse, err := cpu.Percent(0, false)
	if err == nil && len(_cpuuse) > 0 {
		metrics.SetGauge("system_cpuuse", int64(_cpuuse[0]*100)) // Store as percentage * 100
	}

	// Collect memory usage
	_meminfo, err := mem.VirtualMemory()
	if err == nil {
		metrics.SetGauge("system_memuse", int64(_meminfo.Used/1024/1024)) //nolint:gosec // G115: memory MB value fits in int64
	}
}

// SchedProcessMonitorTask app process monitor
func (a *Application) SchedProcessMonitorTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	p, err := process.NewProcess(int32(os.Getpid())) //nolint:gosec // G115: PID is always within int32 range
	if err != nil {
		return
	}

	// Collect process CPU usage
	cpuuse, err := p.CPUPercent()
	if err == nil {
		metrics.SetGauge("inventorypro_cpuuse", int64(cpuuse*100)) // Store as percentage * 100
	}

	// Collect process memory usage
	meminfo, err := p.MemoryInfo()
	if err == nil {
		metrics.SetGauge("inventorypro_memuse", int64(meminfo.RSS/1024/1024)) //nolint:gosec // G115: memory MB value fits in int64
	}
}

// SchedLowStockScanTask records inventory gauges and raises low-stock alerts.
// The scan reads a snapshot; it never writes the collection.
func (a *Application) SchedLowStockScanTask() {
	defer func() {
		if err := recover(); err != nil {
			zap.S().Error(err)
		}
	}()

	products := a.inventory.Products()
	stats := query.ComputeStats(products)

	metrics.SetGauge("inventory_total", int64(stats.Total))
	metrics.SetGauge("inventory_low_stock", int64(stats.LowStock))
	metrics.SetGauge("inventory_out_of_stock", int64(stats.OutOfStock))
	metrics.SetGauge("inventory_buy_value", int64(stats.TotalBuyValue))
	metrics.SetGauge("inventory_sell_value", int64(stats.TotalSellValue))

	var lowNames []string
	for _, p := range products {
		if p.LowStock() {
			lowNames = append(lowNames, p.Name)
		}
	}
	if len(lowNames) == 0 {
		return
	}

	zap.L().Warn("low stock products detected",
		zap.Int("count", len(lowNames)),
		zap.Strings("products", lowNames))

	a.sendLowStockAlert(lowNames)
}

// sendLowStockAlert mails the low-stock list when SMTP is configured.
// Delivery failure is logged and never retried.
func (a *Application) sendLowStockAlert(names []string) {
	alert := a.appConfig.Alert
	if alert.SMTPHost == "" || alert.To == "" {
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", alert.From)
	m.SetHeader("To", alert.To)
	m.SetHeader("Subject", "InventoryPro low stock alert")
	m.SetBody("text/plain",
		"The following products are at or below their low-stock threshold:\n\n- "+
			strings.Join(names, "\n- ")+"\n")

	d := gomail.NewDialer(alert.SMTPHost, alert.SMTPPort, alert.Username, alert.Password)
	if err := d.DialAndSend(m); err != nil {
		zap.L().Error("low stock alert mail failed", zap.Error(err))
		return
	}
	zap.L().Info("low stock alert mail sent", zap.String("to", alert.To), zap.Int("products", len(names)))
}
