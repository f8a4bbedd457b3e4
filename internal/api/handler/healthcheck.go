package handler

import (
	"net/http"
	"time"
)

type healthcheckResponse struct {
	Status  string    `json:"status"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, healthcheckResponse{
			Status:  "ok",
			Service: "zen-api",
			Time:    time.Now(),
		})
	})
}
