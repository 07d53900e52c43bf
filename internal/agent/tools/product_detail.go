package tools

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/components/tool/utils"
	"github.com/cloudwego/eino/schema"
)

type GetProductDetailsInput struct {
	ProductID string `json:"product_id"`
}

type GetProductDetailsOutput struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Description     string  `json:"description"`
	Price           string  `json:"price"`
	DiscountedPrice string  `json:"discounted_price"`
	Rating          float64 `json:"rating"`
	Reviews         int     `json:"reviews"`
	InStock         bool    `json:"in_stock"`
	IsNew           bool    `json:"is_new"`
}

func createGetProductDetailsTool(finder ProductFinder) tool.BaseTool {
	return utils.NewTool(
		&schema.ToolInfo{
			Name: ToolGetProductDetails,
			Desc: "Get price, discount, rating and availability of a catalogue product. Use it when the customer asks about a specific product shown in the carousel.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {
					Type:     schema.String,
					Desc:     "Product ID as returned by explore_products (e.g., prod-001). Must be exact.",
					Required: true,
				},
			}),
		},
		func(ctx context.Context, in *GetProductDetailsInput) (*GetProductDetailsOutput, error) {
			if in.ProductID == "" {
				return nil, fmt.Errorf("product_id is required")
			}

			prod, ok := finder.Find(in.ProductID)
			if !ok {
				return nil, fmt.Errorf("product not found: %s", in.ProductID)
			}
			return &GetProductDetailsOutput{
				ID:              prod.ID,
				Name:            prod.Name,
				Category:        prod.Category,
				Description:     prod.Description,
				Price:           prod.Price.StringFixed(2),
				DiscountedPrice: prod.DiscountedPrice().StringFixed(2),
				Rating:          prod.Rating,
				Reviews:         prod.Reviews,
				InStock:         prod.InStock,
				IsNew:           prod.IsNew,
			}, nil
		},
	)
}
