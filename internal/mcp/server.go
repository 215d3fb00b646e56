package mcp

import (
	"context"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/zoo-visit-planner/internal/domain"
	"github.com/zoo-visit-planner/internal/domain/repository"
	"github.com/zoo-visit-planner/internal/route"
)

// MapRenderer - отрисовка произвольного маршрута в SVG
type MapRenderer interface {
	RenderRoute(ctx context.Context, ordered []domain.Location, width, dpr float64) ([]byte, error)
}

type Server struct {
	catalog  repository.CatalogRepository
	renderer MapRenderer
	distance route.DistanceFunc
	logger   *zap.Logger
	mcp      *sdk.Server
}

// NewServer создает MCP-сервер с инструментами планировщика
func NewServer(catalog repository.CatalogRepository, renderer MapRenderer, version string, logger *zap.Logger) *Server {
	s := &Server{
		catalog:  catalog,
		renderer: renderer,
		distance: route.PaceDistance,
		logger:   logger,
		mcp: sdk.NewServer(&sdk.Implementation{
			Name:    "zooplan",
			Version: version,
		}, nil),
	}
	s.registerTools()
	return s
}

func (s *Server) Run(ctx context.Context, transport sdk.Transport) error {
	s.logger.Info("MCP server started", zap.String("transport", "stdio"))
	return s.mcp.Run(ctx, transport)
}
