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
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pcapio/pcapio/pkg/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective config",
	RunE:  printConfig,
}

var c = config.NewWithOpts(config.WithDiff(), config.WithRewrite())

func init() {
	c.MustViperize(configCmd)
}

func printConfig(cmd *cobra.Command, args []string) error {
	if err := c.TryLoadFile(c.File()); err != nil {
		return err
	}
	if err := c.Init(); err != nil {
		return err
	}
	body, err := c.Print()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, body)
	return err
}
