// Package stytch is a client-side SDK for the Stytch identity service.
//
// It manages the state a public client accumulates while logging a user
// in: PKCE pairs for redirect-based flows, session tokens once a flow
// completes, and the intermediate tokens B2B flows hand back when more
// factors are needed. The flow layer decides what to attach to each call
// and what to persist; the deep-link dispatcher completes redirect flows
// from inbound callback URLs.
//
// Typical setup:
//
//	client, err := stytch.NewClient(ctx, stytch.Config{
//		PublicToken:    "public-token-...",
//		CallbackScheme: "myapp",
//	})
//	if err != nil {
//		return err
//	}
//	outcome, err := client.Flows().AuthenticatePassword(ctx, email, password)
//
// Session state changes are observable through
// client.Sessions().Subscribe().
package stytch
