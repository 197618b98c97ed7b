// Command cli is a small local console for poking the ledger: it builds the
// in-process stores and runs one command against them. Useful for trying the
// balance rules without standing up the server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/amirasaad/bankledger/infra/initializer"
	"github.com/amirasaad/bankledger/pkg/config"
	"github.com/amirasaad/bankledger/pkg/domain"
	"github.com/amirasaad/bankledger/pkg/domain/user"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"golang.org/x/term"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		color.Red("failed to load configuration: %v", err)
		os.Exit(1)
	}
	deps := initializer.New(cfg)
	ctx := context.Background()

	switch os.Args[1] {
	case "create-user":
		if len(os.Args) < 6 {
			color.Yellow("usage: cli create-user <first> <last> <email> <phone>")
			return
		}
		fmt.Print("Password: ")
		password, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			color.Red("failed to read password: %v", err)
			os.Exit(1)
		}
		u, err := deps.UserService.CreateUser(ctx, user.User{
			FirstName: os.Args[2],
			LastName:  os.Args[3],
			Email:     os.Args[4],
			Phone:     os.Args[5],
			Password:  string(password),
		})
		if err != nil {
			color.Red("error creating user: %v", err)
			os.Exit(1)
		}
		color.Green("user created: id=%s username=%s", u.ID, u.Username)
	case "open":
		if len(os.Args) < 4 {
			color.Yellow("usage: cli open <user_id> <balance>")
			return
		}
		balance, err := decimal.NewFromString(os.Args[3])
		if err != nil {
			color.Red("invalid balance: %v", err)
			os.Exit(1)
		}
		a, err := deps.AccountService.CreateAccount(ctx, os.Args[2], balance)
		if err != nil {
			color.Red("error opening account: %v", err)
			os.Exit(1)
		}
		color.Green("account opened: id=%s number=%s routing=%s balance=%s",
			a.ID, a.AccountNumber, a.RoutingNumber, a.Balance)
	case "deposit", "withdraw":
		if len(os.Args) < 5 {
			color.Yellow("usage: cli %s <user_id> <account_id> <amount>", os.Args[1])
			return
		}
		amount, err := decimal.NewFromString(os.Args[4])
		if err != nil {
			color.Red("invalid amount: %v", err)
			os.Exit(1)
		}
		var out domain.Outcome
		if os.Args[1] == "deposit" {
			out = deps.AccountService.Deposit(ctx, os.Args[2], os.Args[3], amount)
		} else {
			out = deps.AccountService.Withdraw(ctx, os.Args[2], os.Args[3], amount)
		}
		if !out.Successful {
			color.Red(out.Message)
			os.Exit(1)
		}
		color.Green(out.Message)
	default:
		usage()
	}
}

func usage() {
	fmt.Println("Usage: cli <command> [arguments]")
	fmt.Println("Commands:")
	fmt.Println("  create-user <first> <last> <email> <phone>")
	fmt.Println("  open <user_id> <balance>")
	fmt.Println("  deposit <user_id> <account_id> <amount>")
	fmt.Println("  withdraw <user_id> <account_id> <amount>")
}
