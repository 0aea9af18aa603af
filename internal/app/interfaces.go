package app

import (
	"github.com/robfig/cron/v3"
	"github.com/talkincode/inventorypro/config"
	"github.com/talkincode/inventorypro/internal/assistant"
	"github.com/talkincode/inventorypro/internal/store"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// StoreProvider provides access to the inventory store
type StoreProvider interface {
	Inventory() *store.InventoryStore
}

// AssistantProvider provides the description assistant
type AssistantProvider interface {
	Assistant() assistant.Generator
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface
type AppContext interface {
	ConfigProvider
	StoreProvider
	AssistantProvider
	SchedulerProvider

	// InitDb discards the persisted collection and reseeds demonstration data
	InitDb()
}
