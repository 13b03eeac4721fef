package otel

import (
	"go.opentelemetry.io/otel"

	"github.com/Alturino/computer-store/internal/common"
)

var Tracer = otel.Tracer(common.AppMainComputerStore)
