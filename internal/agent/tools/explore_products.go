package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
	"github.com/exclusive-store/server/internal/carousel"
	"github.com/exclusive-store/server/internal/model"
)

// ===================================
// Explore Products Tool
// ===================================

type ExploreProductsInput struct {
	CartID string `json:"cart_id"`
	Width  int    `json:"width,omitempty"`
	Page   int    `json:"page,omitempty"`
}

type ExploreProductsOutput struct {
	Status    model.Status      `json:"status"`
	Notice    string            `json:"notice,omitempty"`
	Page      int               `json:"page"`
	PageCount int               `json:"page_count"`
	Total     int               `json:"total"`
	Products  model.ProductList `json:"products"`
}

func createExploreProductsTool(c CarouselBuilder) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolExploreProducts,
			Desc: "Show one page of the 'Explore Our Products' carousel for a shopper's cart. Products flagged isNew are highlighted picks. Use it when the customer wants ideas or to browse what is in and around their cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"cart_id": {
					Type:     schema.String,
					Desc:     "Cart identifier of the current shopper.",
					Required: true,
				},
				"width": {
					Type: schema.Integer,
					Desc: "Viewport width in pixels; decides how many products fit on a page (default 1280).",
				},
				"page": {
					Type: schema.Integer,
					Desc: "Zero-based page index (default 0).",
				},
			}),
		},
		func(ctx context.Context, in *ExploreProductsInput) (*ExploreProductsOutput, error) {
			if in.CartID == "" {
				return nil, fmt.Errorf("cart_id is required")
			}
			if in.Width == 0 {
				in.Width = 1280
			}

			view, err := c.Build(ctx, carousel.Request{CartID: in.CartID, Width: in.Width, Page: in.Page})
			if err != nil {
				return nil, err
			}

			out := &ExploreProductsOutput{
				Status:    view.Status,
				Notice:    view.Error,
				PageCount: view.PageCount,
				Total:     view.Total,
				Products:  model.ProductList{},
			}
			if view.Page != nil {
				out.Page = view.Page.Index
				out.Products = view.Page.Items()
			}
			return out, nil
		},
	)
}
