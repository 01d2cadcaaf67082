package agent

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/seyda/warehouse"
	"github.com/seyda/warehouse/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			Analyse sentiment of user request, he is here primarily to get information about his warehouse:
			stock levels, pending orders, purchases from farmers, and financial figures.
			If he is angry try to understand why, and seek for a clear user approval.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know about his warehouse, check the bookkeeper first to understand its state.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewMerchant creates the search-grounded expert for anything outside the books.
func NewMerchant() *Expert {
	return &Expert{
		Name: "Merchant",
		Description: `This is an expert produce merchant,
		Very well aware of hazelnut and nut markets, seasonal prices,
		and the latest news about suppliers and agricultural regions.
		Ask the Merchant whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in produce trading, you can search and find about anything related to
			agricultural markets, crop seasons, wholesale prices and logistics. You Leverage Google Search to
			ground your assertions in a solid truth.
			You can get the latests news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewBookkeeper creates the expert in charge of reading the warehouse books.
func NewBookkeeper() *Expert {

	lib := []Function{Summary, Stock, PendingOrders, Restock}

	return &Expert{
		Name: "Bookkeeper",
		Description: `This is the Bookkeeper. He is in charge of reading the user's warehouse books.
		He can report on stock levels, orders, supplier purchases and the financial figures of the business.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a bookkeeper in charge of the user's warehouse books.
				You know how to use the Tools to extract relevant information about the warehouse.
				You are part of a team of experts, yours is everything about the user's warehouse. They might ask
				you questions about it, pardon their approximative language and figure out what they meant.

				Use the available tools to get information about the warehouse
				  - stock levels by product type and package category
				  - pending and shipped orders
				  - revenue, expenses and profit
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

// report wraps a zero-argument warehouse report as a Function.
func report(name, description, response string, render func(w *warehouse.Warehouse) string) *Func {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        name,
			Description: description,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: map[string]*genai.Schema{},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: response,
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			w, err := DecodeWarehouse()
			if err != nil {
				return &genai.FunctionResponse{
					ID:   id,
					Name: name,
					Response: map[string]any{
						"error": err.Error(),
					},
				}
			}
			return &genai.FunctionResponse{
				ID:   id,
				Name: name,
				Response: map[string]any{
					"output": render(w),
				},
			}
		},
	}
}

var Summary = report("Summary",
	`Summary reports the overall financial figures of the warehouse:
	total revenue, total expenses, tax liability and net profit.`,
	"A markdown-formatted table of the warehouse financial summary.",
	func(w *warehouse.Warehouse) string {
		return renderer.SummaryMarkdown(w.Financials())
	})

var Stock = report("Stock",
	`Stock reports the current inventory of the warehouse: unprocessed stock
	in grams per product type, and packaged stock per package category.`,
	"A markdown-formatted view of the warehouse inventory.",
	renderer.InventoryMarkdown)

var PendingOrders = report("PendingOrders",
	`PendingOrders lists the customer orders that are not delivered yet,
	with their category, quantity, status and total price.`,
	"A markdown-formatted table of the open customer orders.",
	func(w *warehouse.Warehouse) string {
		var open []warehouse.Order
		for _, o := range w.Orders() {
			if o.Status != warehouse.Delivered {
				open = append(open, o)
			}
		}
		return renderer.OrdersMarkdown(open)
	})

var Restock = report("Restock",
	`Restock lists the package categories whose stock is at or below their
	minimum level and should be replenished.`,
	"A markdown-formatted table of the package categories that run low.",
	func(w *warehouse.Warehouse) string {
		return renderer.LowStockMarkdown(w.LowStockReport())
	})

// DecodeWarehouse decodes the warehouse from the application's default file.
// If the file does not exist, it returns a new empty warehouse.
func DecodeWarehouse() (*warehouse.Warehouse, error) {
	file := os.Getenv("WHS_FILE")
	if file == "" {
		file = "warehouse.json"
	}
	f, err := os.Open(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			// If the file doesn't exist, it's an empty warehouse.
			return warehouse.New(), nil
		}
		return nil, fmt.Errorf("could not open warehouse file %q: %w", file, err)
	}
	defer f.Close()

	w, err := warehouse.DecodeSnapshot(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode warehouse file %q: %w", file, err)
	}
	return w, nil
}
