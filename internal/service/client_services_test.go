package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/soilstack/fieldsync/internal/appstate"
	"github.com/soilstack/fieldsync/internal/config"
	"github.com/soilstack/fieldsync/internal/logger"
	"github.com/soilstack/fieldsync/internal/mock"
	"github.com/soilstack/fieldsync/internal/store"
)

func TestNewClientServices_RequestsInitialPull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	storages := store.NewClientStoragesWithKV(store.NewMemoryKVStore(), logger.Nop())
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	cfg := config.ClientSync{
		PullInterval:      time.Minute,
		PushRetryInterval: time.Minute,
		DebounceWindow:    10 * time.Millisecond,
	}
	services := NewClientServices(storages, mockAdapter, appstate.NewMonitor(), cfg, logger.Nop())

	// a fresh engine starts with the pull flag raised, so the first
	// eligible moment refreshes the local caches
	assert.True(t, services.PullRequester.Requested())
}
