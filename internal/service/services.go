// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/ml-community/internal/config"
	"github.com/MKhiriev/ml-community/internal/crypto"
	"github.com/MKhiriev/ml-community/internal/logger"
	"github.com/MKhiriev/ml-community/internal/store"
	"github.com/MKhiriev/ml-community/models"
)

type Services struct {
	TokenService   TokenService
	AuthService    AuthService
	UserService    UserService
	GuideService   GuideService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, buildInfo, logger)
	if err != nil {
		return nil, err
	}

	hasher := crypto.NewPasswordHasher(crypto.Params{
		Time:    cfg.App.Argon.Time,
		Memory:  cfg.App.Argon.Memory,
		Threads: cfg.App.Argon.Threads,
		KeyLen:  cfg.App.Argon.KeyLength,
	})
	tokenService := NewTokenService(cfg.App, storages.RevocationStorage, logger)

	return &Services{
		TokenService:   tokenService,
		AuthService:    NewAuthService(storages.UserRepository, tokenService, hasher, logger),
		UserService:    NewUserService(storages.UserRepository, hasher, logger),
		GuideService:   NewGuideService(storages.GuideRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
