// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the gateway's use cases: account registration and
// login, and brokering of moves and resets to the game engine.
//
// Services are stateless. Nothing about a user or a game survives a call:
// the session lives with the client, the board lives in the engine and the
// accounts live in the credential store. Every dependency (store, engine,
// hasher) is created once at startup and injected through the constructors,
// so one service value may serve any number of concurrent requests.
package service
