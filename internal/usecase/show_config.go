package usecase

import (
	"context"

	"github.com/JesseSandvik/Khepri-Black/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct {
	IgnoreGlobal  bool
	IgnoreProject bool
}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	EffectiveConfig *domain.Config
	Sources         []domain.ConfigSource
}

// ShowConfig displays configuration file information and the merged result.
type ShowConfig struct {
	configLoader domain.ConfigLoader
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configLoader domain.ConfigLoader) *ShowConfig {
	return &ShowConfig{
		configLoader: configLoader,
	}
}

// Execute loads the effective configuration.
func (uc *ShowConfig) Execute(_ context.Context, in ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.LoadWithOptions(domain.LoadConfigOptions{
		IgnoreGlobal:  in.IgnoreGlobal,
		IgnoreProject: in.IgnoreProject,
	})
	if err != nil {
		return nil, err
	}

	return &ShowConfigOutput{
		EffectiveConfig: cfg,
		Sources:         uc.configLoader.Sources(),
	}, nil
}
