/*
 * Copyright 2021-2022 by the pcapio authors
 * https://github.com/pcapio/pcapio
 * All Rights Reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package app

import (
	"github.com/spf13/cobra"
)

// RootCmd is the entrance to the pcapio CLI
var RootCmd = &cobra.Command{
	Use:   "pcapio",
	Short: "Inspect, compare and rewrite pcap capture files",
	Long: `
	pcapio reads and writes packet capture files in the classic pcap
	format. It can summarize the file header and record population of a
	capture, compare two captures record by record and octet by octet,
	and rewrite a capture with a different snap length or byte order.
	`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(infoCmd)
	RootCmd.AddCommand(diffCmd)
	RootCmd.AddCommand(rewriteCmd)
	RootCmd.AddCommand(configCmd)
	RootCmd.AddCommand(versionCmd)
}
