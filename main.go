// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	"github.com/cpmech/gomix/inp"
	"github.com/cpmech/gomix/mdl/phase"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v", err)
			io.Pf("See location of error below:\n")
			chk.Verbose = true
			for i := 5; i > 3; i-- {
				chk.CallerInfo(i)
			}
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "", ".mix", true)
	verbose := io.ArgToBool(1, true)
	doplot := io.ArgToBool(2, false)

	// message
	if verbose {
		io.PfWhite("\nGomix -- properties and phases of mixtures\n")
		io.Pf("Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")

		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"plot functions and phase diagrams", "doplot", doplot,
		))
	}

	// input data
	dir, fn := filepath.Split(fnamepath)
	in, err := inp.ReadMix(dir, fn)
	if err != nil {
		chk.Panic("cannot read mixture file:\n%v", err)
	}
	db, err := in.Db()
	if err != nil {
		chk.Panic("cannot read compounds file:\n%v", err)
	}

	// run
	r, err := in.Run(db)
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}
	if verbose {
		io.Pf("\n%s (T = %g K, p = %g Pa)\n", in.Desc, in.T, in.P)
	}
	io.Pf("%v", r)

	// plots
	if doplot {
		dirout := "/tmp/gomix"
		err = db.Functions.PlotAll(in.T-50, in.T+50, 101, nil, dirout, fnkey)
		if err != nil {
			chk.Panic("cannot plot functions:\n%v", err)
		}
		for _, name := range r.Names {
			c, _ := db.Get(name)
			if c.Model == nil {
				continue
			}
			plt.Reset(false, nil)
			phase.Plot(c.Model, c.Model.Triple.P, c.Model.Critical.P, c.Model.Triple.T, c.Model.Critical.T, 101)
			plt.Save(dirout, io.Sf("%s-phase-%s", fnkey, name))
		}
	}
}
