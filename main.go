// Copyright (c) 2026 Lars Claussen. All rights reserved.
// Licensed under the GNU Affero General Public License (AGPL).
// See License.AGPL.txt in the project root for license information.

package main

import "github.com/larsclaussen/core-models/cmd"

func main() {
	cmd.Execute()
}
