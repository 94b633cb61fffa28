package routes

import (
	"net/http"

	"restaurant-api/handlers"
	"restaurant-api/middleware"
	"restaurant-api/models"
	"restaurant-api/permissions"

	"github.com/gin-gonic/gin"
)

// Per-resource permission maps: which roles may use which verb. The
// shared gate in the permissions package is the only place that reads
// these; handlers never re-check roles for coarse access.
var (
	allRoles = []string{models.RoleManager, models.RoleDeliveryCrew, models.RoleCustomer}

	menuItemPerms = permissions.Map{
		http.MethodGet:  allRoles,
		http.MethodPost: {models.RoleManager},
	}
	menuItemDetailPerms = permissions.Map{
		http.MethodGet:    allRoles,
		http.MethodPut:    {models.RoleManager},
		http.MethodPatch:  {models.RoleManager},
		http.MethodDelete: {models.RoleManager},
	}
	categoryPerms = permissions.Map{
		http.MethodGet:    allRoles,
		http.MethodPost:   {models.RoleManager},
		http.MethodDelete: {models.RoleManager},
	}
	groupPerms = permissions.Map{
		http.MethodGet:    {models.RoleManager},
		http.MethodPost:   {models.RoleManager},
		http.MethodDelete: {models.RoleManager},
	}
	cartPerms = permissions.Map{
		http.MethodGet:    {models.RoleCustomer},
		http.MethodPost:   {models.RoleCustomer},
		http.MethodDelete: {models.RoleCustomer},
	}
	orderPerms = permissions.Map{
		http.MethodGet:  allRoles,
		http.MethodPost: {models.RoleCustomer},
	}
	orderDetailPerms = permissions.Map{
		http.MethodGet:    allRoles,
		http.MethodPut:    {models.RoleManager},
		http.MethodPatch:  {models.RoleManager, models.RoleDeliveryCrew},
		http.MethodDelete: {models.RoleManager},
	}
)

func SetupRoutes(r *gin.Engine) {
	// Public routes
	public := r.Group("/api")
	{
		public.POST("/auth/register", handlers.Register)
		public.POST("/auth/login", handlers.Login)
		public.GET("/order-lifecycle", handlers.GetOrderLifecycle)
	}

	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		api.GET("/profile", handlers.GetProfile)

		// Catalog
		api.GET("/menu-items", permissions.Require(menuItemPerms), handlers.ListMenuItems)
		api.POST("/menu-items", permissions.Require(menuItemPerms), handlers.CreateMenuItem)
		api.GET("/menu-items/:id", permissions.Require(menuItemDetailPerms), handlers.GetMenuItem)
		api.PUT("/menu-items/:id", permissions.Require(menuItemDetailPerms), handlers.UpdateMenuItem)
		api.PATCH("/menu-items/:id", permissions.Require(menuItemDetailPerms), handlers.PatchMenuItem)
		api.DELETE("/menu-items/:id", permissions.Require(menuItemDetailPerms), handlers.DeleteMenuItem)

		api.GET("/categories", permissions.Require(categoryPerms), handlers.ListCategories)
		api.POST("/categories", permissions.Require(categoryPerms), handlers.CreateCategory)
		api.DELETE("/categories/:id", permissions.Require(categoryPerms), handlers.DeleteCategory)

		// Role group directory
		api.GET("/groups/manager/users", permissions.Require(groupPerms), handlers.ListGroupMembers(models.RoleManager))
		api.POST("/groups/manager/users", permissions.Require(groupPerms), handlers.AddGroupMember(models.RoleManager))
		api.DELETE("/groups/manager/users/:id", permissions.Require(groupPerms), handlers.RemoveGroupMember(models.RoleManager))
		api.GET("/groups/delivery-crew/users", permissions.Require(groupPerms), handlers.ListGroupMembers(models.RoleDeliveryCrew))
		api.POST("/groups/delivery-crew/users", permissions.Require(groupPerms), handlers.AddGroupMember(models.RoleDeliveryCrew))
		api.DELETE("/groups/delivery-crew/users/:id", permissions.Require(groupPerms), handlers.RemoveGroupMember(models.RoleDeliveryCrew))
		api.GET("/groups/users", permissions.Require(groupPerms), handlers.ListUsersWithRoles)

		// Cart
		api.GET("/cart/menu-items", permissions.Require(cartPerms), handlers.GetCart)
		api.POST("/cart/menu-items", permissions.Require(cartPerms), handlers.AddToCart)
		api.DELETE("/cart/menu-items", permissions.Require(cartPerms), handlers.ClearCart)

		// Orders
		api.GET("/orders", permissions.Require(orderPerms), handlers.ListOrders)
		api.POST("/orders", permissions.Require(orderPerms), handlers.PlaceOrder)
		api.GET("/orders/:id", permissions.Require(orderDetailPerms), handlers.GetOrder)
		api.PUT("/orders/:id", permissions.Require(orderDetailPerms), handlers.UpdateOrder)
		api.PATCH("/orders/:id", permissions.Require(orderDetailPerms), handlers.PatchOrder)
		api.DELETE("/orders/:id", permissions.Require(orderDetailPerms), handlers.DeleteOrder)
	}
}
