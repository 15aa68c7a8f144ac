/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package alias

import "errors"

// ErrEmptyToken indicates a user alias was declared with an empty name.
var ErrEmptyToken = errors.New("alias token must not be empty")
