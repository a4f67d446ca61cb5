// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-expense-tracker/internal/logger"
	"github.com/MKhiriev/go-expense-tracker/internal/service"
	"github.com/MKhiriev/go-expense-tracker/internal/store"
	"github.com/MKhiriev/go-expense-tracker/internal/utils"
	"github.com/MKhiriev/go-expense-tracker/internal/validators"
	"github.com/MKhiriev/go-expense-tracker/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if fieldErrors := validators.ValidateRegister(request); fieldErrors != nil {
		log.Error().Int("fields", len(fieldErrors)).Msg("signup validation failed")
		writeValidationErrors(w, fieldErrors)
		return
	}

	newUser := models.User{
		Email:       request.Email,
		Name:        request.Name,
		PhoneNumber: request.PhoneNumber,
	}

	registeredUser, tokenPair, err := h.services.AuthService.Register(ctx, newUser, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			writeError(w, http.StatusBadRequest, "Invalid data provided")
			return
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already taken")
			writeError(w, http.StatusBadRequest, "User already exists with this email")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	writeData(w, http.StatusCreated, "User registered successfully", models.AuthData{
		User:      registeredUser,
		TokenPair: tokenPair,
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if fieldErrors := validators.ValidateLogin(request); fieldErrors != nil {
		log.Error().Int("fields", len(fieldErrors)).Msg("login validation failed")
		writeValidationErrors(w, fieldErrors)
		return
	}

	foundUser, tokenPair, err := h.services.AuthService.Login(ctx, request.Email, request.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Err(err).Str("email", request.Email).Msg("login rejected")
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	log.Debug().Int64("id", foundUser.UserID).Msg("user successfully logged in")

	writeData(w, http.StatusOK, "Login successful", models.AuthData{
		User:      foundUser,
		TokenPair: tokenPair,
	})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if request.RefreshToken == "" {
		log.Error().Msg("refresh called without a token")
		writeError(w, http.StatusBadRequest, "Refresh token is required")
		return
	}

	tokenPair, err := h.services.AuthService.Refresh(ctx, request.RefreshToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefreshToken):
			log.Err(err).Msg("refresh token rejected")
			writeError(w, http.StatusUnauthorized, "Invalid refresh token")
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			writeError(w, http.StatusInternalServerError, "Server error")
			return
		}
	}

	writeData(w, http.StatusOK, "", tokenPair)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	currentUser, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		log.Error().Msg("authenticated route reached without a user in context")
		writeError(w, http.StatusUnauthorized, "Not authorized")
		return
	}

	writeData(w, http.StatusOK, "", models.UserData{User: currentUser})
}
