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
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pcapio/pcapio/cmd/pcapio/common"
	"github.com/pcapio/pcapio/pkg/config"
	"github.com/pcapio/pcapio/pkg/pcap"
	"github.com/pcapio/pcapio/pkg/util/spinner"
)

var diffCmd = &cobra.Command{
	Use:   "diff [first] [second]",
	Short: "Compare two capture files record by record",
	Args:  cobra.ExactArgs(2),
	RunE:  diff,
}

var diffConfig = config.NewWithOpts(config.WithDiff())

func init() {
	diffConfig.MustViperize(diffCmd)
}

func diff(cmd *cobra.Command, args []string) error {
	if err := common.InitConfigAndLogger(diffConfig); err != nil {
		return err
	}
	spin := spinner.Show("Comparing captures")
	d, err := pcap.Diff(args[0], args[1], diffConfig.Pcap.DiffSnapLen)
	spin.Stop()
	if err != nil {
		return err
	}
	if d == nil {
		_, err := fmt.Fprintln(os.Stdout, "capture files are identical")
		return err
	}
	logrus.Debugf("captures diverged: %s", d.Reason)
	_, _ = fmt.Fprintf(os.Stdout, "capture files differ: %s (ts %d.%06d)\n", d.Reason, d.TsSec, d.TsUsec)
	return errors.New("capture files differ")
}
