// SPDX-License-Identifier: ISC
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registry

import (
	"strings"

	"github.com/assetledger/registryd/fault"
)

// TransferOne - change the owner of a single asset
func (r *Registry) TransferOne(name string, newOwner string) error {
	return r.SetOwner(name, newOwner)
}

// TransferByType - change the owner of every asset of one type
//
// transfers run sequentially in index order; the first failure stops
// enumeration and is returned together with the number of transfers
// already completed.  Records transferred before the failure are not
// rolled back here - all-or-nothing behaviour is the business of the
// enclosing transaction.
func (r *Registry) TransferByType(assetType string, newOwner string) (int, error) {
	if "" == assetType {
		return 0, fault.InvalidAssetType
	}
	if "" == newOwner {
		return 0, fault.InvalidOwner
	}

	count := 0
	err := r.ScanByType(strings.ToLower(assetType), func(name string) error {
		transferErr := r.SetOwner(name, newOwner)
		if nil != transferErr {
			return transferErr
		}
		count += 1
		return nil
	})
	return count, err
}
