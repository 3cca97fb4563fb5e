package response

import (
	"bookhaven/internal/model"
)

func UserResponse(user *model.User) *model.User {
	return &model.User{
		ID:        user.ID,
		Username:  user.Username,
		Nickname:  user.Nickname,
		Role:      user.Role,
		CreatedTs: user.CreatedTs,
	}
}

func UserListResponse(users []*model.User) []*model.User {
	var response []*model.User
	for _, user := range users {
		response = append(response, UserResponse(user))
	}
	return response
}
