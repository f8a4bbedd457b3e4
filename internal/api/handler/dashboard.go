package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/prosocial/zen-api/internal/domain"
	"github.com/prosocial/zen-api/internal/usecases/dashboarding"
	"github.com/prosocial/zen-api/pkg/apiErrors"
	"github.com/prosocial/zen-api/pkg/middleware"
	"github.com/sirupsen/logrus"
)

// studioIDFromRequest extrai o ID do estúdio da URL e verifica se o usuário
// autenticado pode acessá-lo. Admins da plataforma acessam qualquer estúdio;
// os demais usuários somente o estúdio do próprio token.
func studioIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	studioIDStr := httprouter.ParamsFromContext(r.Context()).ByName("id")
	if studioIDStr == "" {
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do estúdio não fornecido", nil)
		return 0, false
	}

	studioID, err := strconv.Atoi(studioIDStr)
	if err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "ID do estúdio inválido", nil)
		return 0, false
	}

	userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
	if !ok {
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return 0, false
	}

	if userClaims.UserStudioID != nil && *userClaims.UserStudioID != studioID {
		logrus.Warnf("Acesso negado ao estúdio %d para usuário ID=%d", studioID, userClaims.UserID)
		apiErrors.WriteError(w, apiErrors.ErrStudioAccessDenied, "Você não tem acesso a este estúdio", nil)
		return 0, false
	}

	return studioID, true
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao enviar resposta")
	}
}

func handleDashboardError(w http.ResponseWriter, err error) {
	if errors.Is(err, dashboarding.ErrDashboardUnavailable) {
		apiErrors.WriteError(w, apiErrors.ErrDashboardComposition, "Erro ao carregar os dados do dashboard", nil)
		return
	}
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao consultar o dashboard", nil)
}

// GetDashboard retorna o snapshot completo do dashboard do estúdio.
func GetDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studioID, ok := studioIDFromRequest(w, r)
		if !ok {
			return
		}

		snapshot, err := service.ComposeSnapshot(r.Context(), studioID)
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao compor dashboard do estúdio %d", studioID)
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, snapshot)
	}
}

// GetDashboardWidget retorna uma única seção do dashboard, identificada pelo
// nome do widget na URL.
func GetDashboardWidget(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studioID, ok := studioIDFromRequest(w, r)
		if !ok {
			return
		}

		widget := httprouter.ParamsFromContext(r.Context()).ByName("widget")

		var payload any
		var err error

		switch widget {
		case "eventos":
			payload, err = service.GetMonthlyEvents(r.Context(), studioID)
		case "finanzas":
			payload, err = service.GetFinancialBalance(r.Context(), studioID)
		case "prospectos":
			payload, err = service.GetNewProspects(r.Context(), studioID)
		case "etapas":
			payload, err = service.GetStageDistribution(r.Context(), studioID)
		case "citas":
			payload, err = service.GetUpcomingAppointments(r.Context(), studioID)
		case "rendimiento":
			payload, err = service.GetPerformanceMetrics(r.Context(), studioID)
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Widget desconhecido: "+widget, nil)
			return
		}

		if err != nil {
			logrus.WithError(err).Errorf("Erro ao consultar widget %s do estúdio %d", widget, studioID)
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, payload)
	}
}

// GetQuickStats retorna o resumo leve do cabeçalho do dashboard.
func GetQuickStats(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studioID, ok := studioIDFromRequest(w, r)
		if !ok {
			return
		}

		stats, err := service.GetQuickStats(r.Context(), studioID)
		if err != nil {
			logrus.WithError(err).Errorf("Erro ao consultar stats do estúdio %d", studioID)
			handleDashboardError(w, err)
			return
		}

		writeJSON(w, stats)
	}
}

// InvalidateDashboard descarta o snapshot em cache do estúdio. Deve ser
// chamado após qualquer escrita que afete os dados agregados.
func InvalidateDashboard(service dashboarding.Dashboarder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		studioID, ok := studioIDFromRequest(w, r)
		if !ok {
			return
		}

		if err := service.InvalidateSnapshot(r.Context(), studioID); err != nil {
			logrus.WithError(err).Errorf("Erro ao invalidar cache do estúdio %d", studioID)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao invalidar o cache do dashboard", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
