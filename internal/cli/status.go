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
	"fmt"

	"dirpx.dev/apierr/apis"
	"dirpx.dev/apierr/mapper"
	"github.com/spf13/cobra"
)

func newStatusCmd() *cobra.Command {
	var (
		site    siteFlags
		cfgPath string
	)
	cmd := &cobra.Command{
		Use:   "status [flags] MESSAGE...",
		Short: "Show the HTTP and gRPC statuses a failure maps to",
		Example: `  faultctl status "108 : shard offline"
  faultctl status --config mapper.yaml --component DeliveryService --operation Send "108 : shard offline"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := loadMapper(cfgPath)
			if err != nil {
				return err
			}
			e := site.classify(args)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.Explain(e.Code(), e.Reason()))
			return err
		},
	}
	site.register(cmd)
	cmd.Flags().StringVar(&cfgPath, "config", "", "mapper YAML configuration")
	return cmd
}

func loadMapper(path string) (apis.Mapper, error) {
	if path == "" {
		return mapper.Default(), nil
	}
	opts, err := mapper.LoadConfigFile(path)
	if err != nil {
		return nil, err
	}
	return mapper.New(opts...)
}
