/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package cli

import (
	"encoding/json"
	"fmt"

	"dirpx.dev/apierr/adapter"
	"github.com/spf13/cobra"
)

func newClassifyCmd() *cobra.Command {
	var (
		site   siteFlags
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "classify [flags] MESSAGE...",
		Short: "Classify a failure message",
		Example: `  faultctl classify "103 : session expired"
  faultctl classify --tries 3 "Could not connect to host"
  faultctl classify --json --code 113 "read timed out"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := adapter.ToView(site.classify(args))
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(v)
			}
			name := v.Name
			if name == "" {
				name = "-"
			}
			_, err := fmt.Fprintf(out, "code:        %d (%s)\ncategory:    %s\nrecoverable: %t\nreason:      %s\nmessage:     %s\n",
				v.Code, name, v.Category, v.Recoverable, v.Reason, v.Message)
			return err
		},
	}
	site.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the classification as JSON")
	return cmd
}
