// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// news kiosk presentation layer.
//
// All Msg* constants are human-readable strings shown to the user to
// describe the outcome of an operation. Keeping them in one place ensures
// consistent wording across the screens.
package app

const (
	// MsgInvalidDataProvided is shown when a form fails validation and no
	// field-specific message applies.
	MsgInvalidDataProvided = "Invalid data provided."

	// MsgUsernameRequired is shown when the registration form has no username.
	MsgUsernameRequired = "Username is required."

	// MsgInvalidEmailFormat is shown when the email does not look like an
	// email address.
	MsgInvalidEmailFormat = "Entered value does not match email format"

	// MsgPasswordTooShort is shown when the password is shorter than six
	// characters.
	MsgPasswordTooShort = "Minimum length should be 6"

	// MsgDuplicateUsername is shown when registration collides on username.
	MsgDuplicateUsername = "Username already exists. Please choose a different username."

	// MsgDuplicateEmail is shown when registration collides on email.
	MsgDuplicateEmail = "Email address already exists. Please use a different email."

	// MsgAccountNotFound is shown when login uses an unknown email.
	MsgAccountNotFound = "Email address not found. Please register first."

	// MsgIncorrectPassword is shown when the password does not match.
	MsgIncorrectPassword = "Incorrect password."

	// MsgNotLoggedIn is shown when an action needs a session and there is none.
	MsgNotLoggedIn = "User not logged in."

	// MsgInsufficientBalance is shown when the wallet cannot cover the price.
	MsgInsufficientBalance = "Insufficient balance."

	// MsgAlreadyOwned is shown on a repeated purchase of the same article.
	MsgAlreadyOwned = "You already own this article."

	// MsgNoTicketsAvailable is shown when a draw is attempted without tickets.
	MsgNoTicketsAvailable = "No lucky draw chances left."

	// MsgFeedUnavailable is shown when the article feed cannot be fetched.
	MsgFeedUnavailable = "There was an error fetching the articles."

	// MsgNoArticleSelected is shown when the detail screen has nothing to show.
	MsgNoArticleSelected = "No article selected."

	// MsgStorageUnavailable is shown when the local store cannot be reached.
	MsgStorageUnavailable = "Local storage is unavailable."

	// MsgUnexpectedError is shown for every error without a dedicated message.
	MsgUnexpectedError = "Something went wrong. Please try again."

	// MsgPurchaseSuccessful is shown after a completed purchase.
	MsgPurchaseSuccessful = "You have successfully purchased the article."

	// MsgTicketsGranted is shown when a purchase unlocked lucky draw tickets.
	MsgTicketsGranted = "You unlocked 3 lucky draw chances!"

	// MsgLoginSuccessful is shown on the feed right after login.
	MsgLoginSuccessful = "Login successful."

	// MsgRegistrationSuccessful is shown on the menu after registration.
	MsgRegistrationSuccessful = "Account created. You can log in now."

	// MsgCopied is shown after an article URL was copied to the clipboard.
	MsgCopied = "Link copied to clipboard."
)
