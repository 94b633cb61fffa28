package handlers

import (
	"net/http"

	"restaurant-api/config"
	"restaurant-api/models"

	"github.com/gin-gonic/gin"
)

type GroupMemberRequest struct {
	UserID uint `json:"user_id" binding:"required"`
}

type groupMember struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// ListGroupMembers returns the members of a role group.
func ListGroupMembers(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		config.DB.
			Joins("JOIN user_groups ON user_groups.user_id = users.id").
			Joins("JOIN groups ON groups.id = user_groups.group_id").
			Where("groups.name = ?", groupName).
			Find(&users)

		members := make([]groupMember, 0, len(users))
		for _, u := range users {
			members = append(members, groupMember{ID: u.ID, Username: u.Username})
		}
		c.JSON(http.StatusOK, gin.H{"count": len(members), "users": members})
	}
}

// AddGroupMember adds a user to a role group. A missing user is a 404;
// adding an existing member is a no-op success.
func AddGroupMember(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req GroupMemberRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		if err := config.DB.First(&user, req.UserID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Group not found"})
			return
		}

		if err := config.DB.Model(&user).Association("Groups").Append(&group); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add user to group"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "User added to " + groupName + " group"})
	}
}

// RemoveGroupMember removes a user from a role group. A missing user is
// a 404; removing a non-member succeeds without effect.
func RemoveGroupMember(groupName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := config.DB.First(&user, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}

		var group models.Group
		if err := config.DB.Where("name = ?", groupName).First(&group).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Group not found"})
			return
		}

		if err := config.DB.Model(&user).Association("Groups").Delete(&group); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove user from group"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "User removed from " + groupName + " group"})
	}
}

// ListUsersWithRoles returns the full user directory with each user's
// role set; users in no group report ["customer"].
func ListUsersWithRoles(c *gin.Context) {
	var users []models.User
	config.DB.Preload("Groups").Find(&users)

	data := make([]gin.H, 0, len(users))
	for _, u := range users {
		data = append(data, gin.H{
			"id":       u.ID,
			"username": u.Username,
			"email":    u.Email,
			"roles":    u.RoleNames(),
		})
	}
	c.JSON(http.StatusOK, gin.H{"count": len(data), "users": data})
}
