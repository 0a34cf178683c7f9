package e2e

import (
	"github.com/cucumber/godog"

	"tripapp/e2e/steps/booking"
	"tripapp/e2e/steps/common"
)

// RegisterSteps registers all step definitions from modular packages
func RegisterSteps(ctx *godog.ScenarioContext, tc *TestContext) {
	// Register common steps (generic requests, assertions)
	common.RegisterSteps(ctx, tc)

	// Register trip and client steps
	booking.RegisterSteps(ctx, tc)
}
