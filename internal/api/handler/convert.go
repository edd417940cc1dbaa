package handler

import (
	"github.com/MateuszRostek/book-store/internal/api/dto"
	"github.com/MateuszRostek/book-store/internal/model"
)

func convertUserModelToDTO(user *model.User) dto.UserDTO {
	return dto.UserDTO{
		UserID:          user.UserID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ShippingAddress: user.ShippingAddress,
		IsAdmin:         user.IsAdmin,
	}
}

func convertBookModelToDTO(book *model.Book) dto.BookDTO {
	categories := make([]dto.CategoryDTO, 0, len(book.Categories))
	for _, c := range book.Categories {
		categories = append(categories, convertCategoryModelToDTO(&c))
	}
	return dto.BookDTO{
		BookID:      book.BookID,
		Title:       book.Title,
		Author:      book.Author,
		ISBN:        book.ISBN,
		Price:       book.Price.StringFixed(2),
		Description: book.Description,
		CoverImage:  book.CoverImage,
		Categories:  categories,
	}
}

func convertCategoryModelToDTO(category *model.Category) dto.CategoryDTO {
	return dto.CategoryDTO{
		CategoryID: category.CategoryID,
		Name:       category.Name,
	}
}

func convertCartModelToDTO(cart *model.ShoppingCart) dto.CartDTO {
	items := make([]dto.CartItemDTO, 0, len(cart.CartItems))
	for _, item := range cart.CartItems {
		items = append(items, dto.CartItemDTO{
			CartItemID: item.CartItemID,
			BookID:     item.BookID,
			Quantity:   item.Quantity,
		})
	}
	return dto.CartDTO{
		CartID: cart.CartID,
		UserID: cart.UserID,
		Items:  items,
	}
}

func convertOrderItemModelToDTO(item *model.OrderItem) dto.OrderItemDTO {
	return dto.OrderItemDTO{
		OrderItemID: item.OrderItemID,
		BookID:      item.BookID,
		Quantity:    item.Quantity,
		Price:       item.Price.StringFixed(2),
	}
}

func convertOrderModelToDTO(order *model.Order) dto.OrderDTO {
	items := make([]dto.OrderItemDTO, 0, len(order.OrderItems))
	for i := range order.OrderItems {
		items = append(items, convertOrderItemModelToDTO(&order.OrderItems[i]))
	}
	return dto.OrderDTO{
		OrderID:         order.OrderID,
		UserID:          order.UserID,
		Status:          order.Status.String(),
		Total:           order.Total.StringFixed(2),
		OrderDate:       order.OrderDate,
		ShippingAddress: order.ShippingAddress,
		Items:           items,
	}
}
