package validator // import "bookhaven/internal/validator"

import (
	"regexp"

	"github.com/pkg/errors"

	"bookhaven/internal/model"
	"bookhaven/internal/store"
)

var usernameMatcher = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]{1,30}$`)

func ValidateSignupRequest(s *store.Store, signup *model.UserSignupRequest) error {
	if signup == nil {
		return errors.New("signup request is nil")
	}
	if signup.Username == "" {
		return errors.New("username is empty")
	}
	if !usernameMatcher.MatchString(signup.Username) {
		return errors.New("username is invalid")
	}
	if signup.Password == "" {
		return errors.New("password is empty")
	}
	if user, _ := s.GetUser(&model.FindUser{Username: &signup.Username}); user != nil {
		return errors.New("username already exists")
	}
	return validatePassword(signup.Password)
}

func ValidateAuthor(author *model.Author) error {
	if author == nil {
		return errors.New("author is nil")
	}
	if author.Name == "" {
		return errors.New("author name is empty")
	}
	if author.ForeignAuthorID == "" {
		return errors.New("author foreign id is empty")
	}
	return nil
}

func ValidateBook(book *model.Book) error {
	if book == nil {
		return errors.New("book is nil")
	}
	if book.Title == "" {
		return errors.New("book title is empty")
	}
	if book.AuthorID <= 0 {
		return errors.New("book author id is empty")
	}
	return nil
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return errors.New("password is too short")
	}
	return nil
}
