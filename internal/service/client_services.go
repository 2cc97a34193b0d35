package service

import (
	"github.com/InfraForgeLabs/devopsmind-relay/internal/adapter"
	"github.com/InfraForgeLabs/devopsmind-relay/internal/logger"
)

type ClientServices struct {
	SubmissionService ClientSubmissionService
}

func NewClientServices(relayClient adapter.RelayClient, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		SubmissionService: NewClientSubmissionService(relayClient, logger),
	}
}
