package cli

import (
	"context"
	"fmt"
	"log"
	"strconv"
)

// ShowCart prints the cart lines, the totals, and the outcome banner of a
// just-completed purchase. Viewing the banner dismisses it.
func (a *App) ShowCart(ctx context.Context) error {
	if a.cart.ShowSuccess() {
		fmt.Printf("Purchase complete! Order reference: %s\n", a.cart.LastOrderRef())
		a.cart.DismissSuccess()
	}

	items := a.cart.Items()
	if len(items) == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	for _, it := range items {
		fmt.Printf("%4d  %-40s  x%d  $%.0f\n", it.Product.ID, it.Product.Name, it.Quantity, it.TotalPrice())
	}
	fmt.Printf("Total: %d items, $%.0f\n", a.cart.TotalItems(), a.cart.TotalPrice())
	return nil
}

// AddToCart looks the product up in the local catalog and adds it to the
// cart, merging with an existing line for the same product.
func (a *App) AddToCart(ctx context.Context, id string) error {
	productID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number")
		return err
	}

	items, err := a.catalog.ListAll(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	for _, p := range items {
		if p.ID == productID {
			a.cart.Add(p)
			fmt.Printf("Added %s\n", p.Name)
			return nil
		}
	}

	fmt.Printf("No product with id %d\n", productID)
	return nil
}

// RemoveFromCart drops the cart line for the given product id.
func (a *App) RemoveFromCart(ctx context.Context, id string) error {
	productID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number")
		return err
	}
	a.cart.Remove(productID)
	return nil
}

// SetQuantity sets the quantity of a cart line. Zero or negative removes
// the line.
func (a *App) SetQuantity(ctx context.Context, id, qty string) error {
	productID, err := strconv.ParseInt(id, 10, 64)
	if err != nil {
		fmt.Println("Product id must be a number")
		return err
	}
	n, err := strconv.Atoi(qty)
	if err != nil {
		fmt.Println("Quantity must be a number")
		return err
	}
	a.cart.SetQuantity(productID, n)
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear()
	fmt.Println("Cart cleared")
	return nil
}

// Checkout purchases the cart contents and prints the order reference.
func (a *App) Checkout(ctx context.Context) error {
	if a.cart.TotalItems() == 0 {
		fmt.Println("Cart is empty")
		return nil
	}
	ref := a.cart.Purchase()
	fmt.Printf("Purchase complete! Order reference: %s\n", ref)
	a.cart.DismissSuccess()
	return nil
}
