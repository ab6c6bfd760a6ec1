// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 João Jacome

package service

import "errors"

var (
	ErrFolderNotFound  = errors.New("vault folder not found")
	ErrAmbiguousFolder = errors.New("vault folder name is ambiguous")

	ErrNoKeys = errors.New("no ssh keys resolved")
)
