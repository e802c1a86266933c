// Package main provides the admin CLI entry point.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"connectrpc.com/connect"
	"github.com/alecthomas/kingpin/v2"
	"github.com/joho/godotenv"

	apiconnect "github.com/osa030/19player/internal/api/connect"
	"github.com/osa030/19player/internal/app/entitlement"
	playerv1 "github.com/osa030/19player/internal/gen/player/v1"
	"github.com/osa030/19player/internal/gen/player/v1/playerv1connect"
)

var (
	app    = kingpin.New("19player-admincli", "19player admin client")
	server = app.Flag("server", "Server address").Default("http://localhost:8080").Envar("PLAYER_SERVER").String()
	token  = app.Flag("token", "Admin token (or set ADMIN_TOKEN env)").Envar("ADMIN_TOKEN").String()

	// entitlement commands
	entitlementCmd    = app.Command("entitlement", "Inspect or change the entitlement source")
	entitlementGetCmd = entitlementCmd.Command("get", "Show the entitlement source").Default()
	entitlementSetCmd = entitlementCmd.Command("set", "Grant or revoke playback on a switch source")
	entitled          = entitlementSetCmd.Arg("entitled", "true or false").Required().Bool()

	// set-token command
	setTokenCmd   = app.Command("set-token", "Replace the subscription token of a token source")
	setTokenValue = setTokenCmd.Arg("token", "Signed subscription token (empty clears it)").String()

	// issue-token command (offline)
	issueCmd        = app.Command("issue-token", "Sign a subscription token locally")
	issueSecret     = issueCmd.Flag("secret", "Signing secret").Envar("ENTITLEMENT_SECRET").Required().String()
	issueTTL        = issueCmd.Flag("ttl", "Token lifetime (0 for no expiry)").Default("720h").Duration()
	issueIssuer     = issueCmd.Flag("issuer", "Issuer claim").String()
	issueSubscribed = issueCmd.Flag("subscribed", "Subscribed claim").Default("true").Bool()
	issueApply      = issueCmd.Flag("apply", "Send the token to the server after signing").Bool()
)

func main() {
	// Load .env file if it exists (errors are ignored)
	_ = godotenv.Load()

	// Parse command
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	if command == issueCmd.FullCommand() {
		signed := issueToken(*issueSecret, *issueSubscribed, *issueTTL, *issueIssuer)
		if !*issueApply {
			fmt.Println(signed)
			return
		}
		*setTokenValue = signed
		command = setTokenCmd.FullCommand()
	}

	// Check admin token
	if *token == "" {
		fmt.Println("Error: admin token is required (use --token or ADMIN_TOKEN env)")
		os.Exit(1)
	}

	// Create client
	client := playerv1connect.NewAdminServiceClient(
		http.DefaultClient,
		*server,
	)

	ctx := context.Background()

	// Execute command
	switch command {
	case entitlementGetCmd.FullCommand():
		getEntitlement(ctx, client, *token)
	case entitlementSetCmd.FullCommand():
		setEntitlement(ctx, client, *token, *entitled)
	case setTokenCmd.FullCommand():
		setSubscriptionToken(ctx, client, *token, *setTokenValue)
	}
}

func getEntitlement(ctx context.Context, client playerv1connect.AdminServiceClient, token string) {
	req := connect.NewRequest(&playerv1.Empty{})
	req.Header().Set(apiconnect.AdminTokenHeader, token)
	resp, err := client.GetEntitlement(ctx, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	printEntitlement(resp.Msg)
}

func setEntitlement(ctx context.Context, client playerv1connect.AdminServiceClient, token string, value bool) {
	req := connect.NewRequest(&playerv1.SetEntitlementRequest{Entitled: value})
	req.Header().Set(apiconnect.AdminTokenHeader, token)
	resp, err := client.SetEntitlement(ctx, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	printEntitlement(resp.Msg)
}

func setSubscriptionToken(ctx context.Context, client playerv1connect.AdminServiceClient, token, subscription string) {
	req := connect.NewRequest(&playerv1.SetSubscriptionTokenRequest{Token: subscription})
	req.Header().Set(apiconnect.AdminTokenHeader, token)
	resp, err := client.SetSubscriptionToken(ctx, req)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if subscription == "" {
		fmt.Println("Subscription token cleared")
	} else {
		fmt.Println("Subscription token replaced")
	}
	printEntitlement(resp.Msg)
}

func issueToken(secret string, subscribed bool, ttl time.Duration, issuer string) string {
	signed, err := entitlement.IssueToken(secret, subscribed, ttl, issuer)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	return signed
}

func printEntitlement(e *playerv1.EntitlementResponse) {
	fmt.Printf("Source: %s\n", e.Source)
	if e.Entitled {
		fmt.Println("Entitled: ✔ full playback")
	} else {
		fmt.Println("Entitled: ✘ previews only, upsell shown")
	}
}
