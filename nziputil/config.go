/*
Copyright © 2026 the NZIP analysis authors.
This file is part of the NZIP analysis toolkit.

The NZIP analysis toolkit is free software: you can redistribute it
and/or modify it under the terms of the GNU General Public License as
published by the Free Software Foundation, either version 3 of the
License, or (at your option) any later version.

The NZIP analysis toolkit is distributed in the hope that it will be
useful, but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with the NZIP analysis toolkit.  If not, see <http://www.gnu.org/licenses/>.
*/

package nziputil

import (
	"encoding/json"
	"fmt"

	"github.com/lnashier/viper"
	"github.com/spf13/cast"
)

// getStringSlice returns a []string from a viper configuration,
// accounting for the fact that it might be a json array if it was set
// from a command line argument or an environment variable.
func getStringSlice(varName string, cfg *viper.Viper) ([]string, error) {
	i := cfg.Get(varName)
	switch v := i.(type) {
	case []string:
		return v, nil
	case []interface{}:
		return cast.ToStringSliceE(i)
	case string:
		if v == "" {
			return nil, nil
		}
		var o []string
		if err := json.Unmarshal([]byte(v), &o); err != nil {
			return nil, fmt.Errorf("nzip: parsing configuration variable %s: %v", varName, err)
		}
		return o, nil
	default:
		return nil, fmt.Errorf("invalid type for string slice variable %s: %#v", varName, i)
	}
}
