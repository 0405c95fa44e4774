//
// Tencent is pleased to support the open source community by making trpc-genmedia-go available.
//
// Copyright (C) 2025 Tencent.
// All rights reserved.
//
// If you have downloaded a copy of the tRPC source code from Tencent,
// please note that tRPC source code is licensed under the  Apache 2.0 License,
// A copy of the Apache 2.0 License is included in this file.
//
//

// Package asset provides path construction shared by asset service backends.
package asset

import (
	"fmt"
	"strings"

	"trpc.group/trpc-go/trpc-genmedia-go/asset"
)

// userNamespacePrefix marks asset names stored per user rather than per
// session.
const userNamespacePrefix = "user:"

// HasUserNamespace reports whether name is stored in the user namespace.
func HasUserNamespace(name string) bool {
	return strings.HasPrefix(name, userNamespacePrefix)
}

// Path returns the storage path of an asset:
//
//	{app}/{user}/user/{name} for user-namespaced names,
//	{app}/{user}/{session}/{name} otherwise.
func Path(owner asset.Owner, name string) string {
	if HasUserNamespace(name) {
		return fmt.Sprintf("%s/%s/user/%s", owner.AppName, owner.UserID, name)
	}
	return fmt.Sprintf("%s/%s/%s/%s", owner.AppName, owner.UserID, owner.SessionID, name)
}

// ObjectName returns the versioned object name used by object-store backends.
func ObjectName(owner asset.Owner, name string, version int) string {
	return fmt.Sprintf("%s/%d", Path(owner, name), version)
}

// ObjectPrefix returns the prefix matching every version of one asset.
func ObjectPrefix(owner asset.Owner, name string) string {
	return Path(owner, name) + "/"
}

// SessionPrefix returns the prefix matching all session-scoped assets.
func SessionPrefix(owner asset.Owner) string {
	return fmt.Sprintf("%s/%s/%s/", owner.AppName, owner.UserID, owner.SessionID)
}

// UserPrefix returns the prefix matching all user-namespaced assets.
func UserPrefix(owner asset.Owner) string {
	return fmt.Sprintf("%s/%s/user/", owner.AppName, owner.UserID)
}
