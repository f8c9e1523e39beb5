package app

import (
	"context"
	"fmt"

	"github.com/cheonTH/singlelife/internal/auth"
)

func (a *App) loginScreen(ctx context.Context) {
	userID := a.prompt("user id> ")
	password := a.prompt("password> ")
	res, err := a.auth.Login(ctx, userID, password)
	if err != nil {
		a.notice(err)
		return
	}
	fmt.Printf("Welcome, %s!\n", res.NickName)
}

func (a *App) signupScreen(ctx context.Context) {
	form := auth.SignupForm{
		Name:   a.prompt("name> "),
		UserID: a.prompt("user id> "),
	}

	if available, err := a.auth.CheckUserID(ctx, form.UserID); err != nil {
		a.notice(err)
	} else if !available {
		fmt.Println("That user id is already taken.")
		return
	}

	form.Password = a.prompt("password> ")
	form.ConfirmPassword = a.prompt("confirm password> ")
	form.NickName = a.prompt("nickname> ")

	if available, err := a.auth.CheckNickname(ctx, form.NickName); err != nil {
		a.notice(err)
	} else if !available {
		fmt.Println("That nickname is already taken.")
		return
	}

	form.Email = a.prompt("email> ")
	if err := a.auth.SendEmailCode(ctx, form.Email); err != nil {
		a.notice(err)
		return
	}
	code := a.prompt("verification code> ")
	if !a.auth.VerifyEmailCode(code) {
		fmt.Println("Verification code does not match.")
		return
	}

	if err := a.auth.Signup(ctx, form); err != nil {
		a.notice(err)
		return
	}
	fmt.Println("Signed up. You can log in now.")
}

func (a *App) myPageScreen(ctx context.Context) {
	profile, err := a.auth.Me(ctx)
	if err != nil {
		a.notice(err)
		return
	}
	fmt.Printf("\n== my page ==\n  name: %s\n  id: %s\n  nickname: %s\n  email: %s\n",
		profile.Name, profile.UserID, profile.NickName, profile.Email)

	fmt.Println("e) edit profile  f) find id  r) reset password  b) back")
	switch a.prompt("mypage> ") {
	case "e":
		password := a.prompt("current password> ")
		valid, err := a.auth.CheckPassword(ctx, password)
		if err != nil {
			a.notice(err)
			return
		}
		if !valid {
			fmt.Println("Wrong password.")
			return
		}
		name := a.prompt(fmt.Sprintf("name [%s]> ", profile.Name))
		nickName := a.prompt(fmt.Sprintf("nickname [%s]> ", profile.NickName))
		email := a.prompt(fmt.Sprintf("email [%s]> ", profile.Email))
		if name == "" {
			name = profile.Name
		}
		if nickName == "" {
			nickName = profile.NickName
		}
		if email == "" {
			email = profile.Email
		}
		if _, err := a.auth.UpdateProfile(ctx, name, nickName, email); err != nil {
			a.notice(err)
			return
		}
		fmt.Println("Profile updated.")
	case "f":
		name := a.prompt("name> ")
		email := a.prompt("email> ")
		userID, err := a.auth.FindUserID(ctx, name, email)
		if err != nil {
			a.notice(err)
			return
		}
		fmt.Printf("Your id: %s\n", userID)
	case "r":
		userID := a.prompt("user id> ")
		email := a.prompt("email> ")
		newPassword := a.prompt("new password> ")
		if err := a.auth.ResetPassword(ctx, userID, email, newPassword); err != nil {
			a.notice(err)
			return
		}
		fmt.Println("Password reset. Log in with the new one.")
	}
}
