package cmd

import "github.com/google/subcommands"

// Commands lists every subcommand of the application, in help order.
var Commands = []subcommands.Command{
	&addFarmerCmd{},
	&updateFarmerCmd{},
	&deleteFarmerCmd{},
	&farmersCmd{},
	&farmerReportCmd{},

	&purchaseCmd{},
	&updatePurchaseCmd{},
	&deletePurchaseCmd{},
	&purchasesCmd{},
	&rangeReportCmd{},

	&processCmd{},
	&packSizeCmd{},
	&inventoryCmd{},
	&lowStockCmd{},

	&orderCmd{},
	&updateOrderCmd{},
	&orderStatusCmd{},
	&deleteOrderCmd{},
	&ordersCmd{},

	&priceCmd{},
	&pricesCmd{},
	&summaryCmd{},
	&monthlyCmd{},
	&yearlyCmd{},

	&exportCmd{},
	&topicCmd{},
	&AssistCmd{},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// Names returns the name of every subcommand, for shell completion.
func Names() []string {
	names := make([]string, 0, len(Commands))
	for _, cmd := range Commands {
		names = append(names, cmd.Name())
	}
	return names
}
