package cli

import (
	"github.com/IvanChernomyrdin/go-songfactory/internal/demo"
	"github.com/IvanChernomyrdin/go-songfactory/internal/shared/logger"
)

// для тестов
var (
	NewLogger = logger.New
	NewDriver = demo.New
)
