// Package tools exposes the storefront carousel and catalogue to agents as
// Eino tools.
package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/schema"
	"github.com/exclusive-store/server/internal/carousel"
	"github.com/exclusive-store/server/internal/model"
)

const (
	ToolExploreProducts   = "explore_products"
	ToolGetProductDetails = "get_product_details"
)

// ProductFinder looks products up in the catalogue.
type ProductFinder interface {
	Find(id string) (model.Product, bool)
}

// CarouselBuilder renders carousel pages.
type CarouselBuilder interface {
	Build(ctx context.Context, req carousel.Request) (*model.Carousel, error)
}

// Dependencies wires the tools to the services they read from.
type Dependencies struct {
	Carousel CarouselBuilder
	Catalog  ProductFinder
}

// GetQueryTools returns every tool available to shopping agents.
func GetQueryTools(deps Dependencies) []tool.BaseTool {
	return []tool.BaseTool{
		createExploreProductsTool(deps.Carousel),
		createGetProductDetailsTool(deps.Catalog),
	}
}

// GetToolInfos collects the schema of each tool.
func GetToolInfos(ctx context.Context, tools []tool.BaseTool) ([]*schema.ToolInfo, error) {
	infos := make([]*schema.ToolInfo, 0, len(tools))
	for _, t := range tools {
		info, err := t.Info(ctx)
		if err != nil {
			return nil, fmt.Errorf("tool info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, nil
}
