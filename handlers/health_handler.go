package handlers

import (
	"net/http"

	"digitalagency/utils"
)

func Health(w http.ResponseWriter, r *http.Request) {
	utils.HandleMessageResponse(w, "Server is running", http.StatusOK)
}
