package scheduler

import (
	"context"
	"testing"

	"github.com/prosocial/zen-api/infrastructure/repository/mocks"
	"github.com/prosocial/zen-api/internal/domain"
	dashmocks "github.com/prosocial/zen-api/internal/usecases/dashboarding/mocks"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestDashboardWarmupService_warmupAllStudios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudioRepo := mocks.NewMockStudioRepository(ctrl)
	mockDashboard := dashmocks.NewMockDashboarder(ctrl)

	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{
			CronSchedule:      "0 6 * * *",
			MaxConcurrentJobs: 2,
			WarmupEnabled:     true,
		},
		studioRepo:       mockStudioRepo,
		dashboardService: mockDashboard,
	}

	studios := []*domain.Studio{
		{ID: 1, Nombre: "Estudio Uno", Activo: true},
		{ID: 2, Nombre: "Estudio Dos", Activo: true},
		{ID: 3, Nombre: "Estudio Tres", Activo: true},
	}

	mockStudioRepo.EXPECT().ListActivos(gomock.Any()).Return(studios, nil)

	// cada estúdio é invalidado e recomposto, mesmo quando outro falha
	for _, studio := range studios {
		mockDashboard.EXPECT().InvalidateSnapshot(gomock.Any(), studio.ID).Return(nil)
	}
	mockDashboard.EXPECT().ComposeSnapshot(gomock.Any(), 1).Return(&domain.DashboardSnapshot{StudioID: 1}, nil)
	mockDashboard.EXPECT().ComposeSnapshot(gomock.Any(), 2).Return(nil, assert.AnError)
	mockDashboard.EXPECT().ComposeSnapshot(gomock.Any(), 3).Return(&domain.DashboardSnapshot{StudioID: 3}, nil)

	service.warmupAllStudios(context.Background())

	assert.NotEmpty(t, service.lastRunID)
	assert.False(t, service.lastRunStartedAt.IsZero())
	assert.False(t, service.lastRunCompletedAt.IsZero())
	assert.False(t, service.warmupRunning)
}

func TestDashboardWarmupService_warmupAllStudios_ErroAoListarEstudios(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudioRepo := mocks.NewMockStudioRepository(ctrl)
	mockDashboard := dashmocks.NewMockDashboarder(ctrl)

	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{
			MaxConcurrentJobs: 2,
			WarmupEnabled:     true,
		},
		studioRepo:       mockStudioRepo,
		dashboardService: mockDashboard,
	}

	mockStudioRepo.EXPECT().ListActivos(gomock.Any()).Return(nil, assert.AnError)

	// nenhum aquecimento deve ser disparado
	service.warmupAllStudios(context.Background())

	assert.True(t, service.lastRunCompletedAt.IsZero())
	assert.False(t, service.warmupRunning)
}

func TestDashboardWarmupService_warmupAllStudios_IgnoraExecucaoConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockStudioRepo := mocks.NewMockStudioRepository(ctrl)

	service := &DashboardWarmupService{
		config:        DashboardWarmupConfig{MaxConcurrentJobs: 1, WarmupEnabled: true},
		studioRepo:    mockStudioRepo,
		warmupRunning: true,
	}

	// com warmupRunning marcado, o repositório nem é consultado
	service.warmupAllStudios(context.Background())
}

func TestDashboardWarmupService_Start_Desabilitado(t *testing.T) {
	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{WarmupEnabled: false},
	}

	err := service.Start(context.Background())

	assert.NoError(t, err)
}

func TestDashboardWarmupService_GetStatus(t *testing.T) {
	service := &DashboardWarmupService{
		config: DashboardWarmupConfig{
			CronSchedule:      "0 6 * * *",
			MaxConcurrentJobs: 3,
			WarmupEnabled:     true,
		},
		lastRunID: "abc123",
	}

	status := service.GetStatus()

	assert.Equal(t, true, status["warmup_enabled"])
	assert.Equal(t, "0 6 * * *", status["warmup_cron"])
	assert.Equal(t, 3, status["warmup_max_concurrent"])
	assert.Equal(t, "abc123", status["last_run_id"])
}
