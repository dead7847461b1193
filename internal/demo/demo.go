// demo.go loads a round payload and prints the portfolios the builders
// produce for it.
//
// It is internal, as it is only used to eyeball strategy output during
// development.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nfc-go/nfc"
	"github.com/nfc-go/nfc/format"
)

func main() {
	roundPath := flag.String("round", "", "path to a round JSON payload")
	betAmount := flag.Uint("amount", 8000, "global bet amount in NP")
	flag.Parse()

	if *roundPath == "" {
		log.Fatal("the -round flag is required")
	}
	payload, err := os.ReadFile(*roundPath)
	if err != nil {
		log.Fatal(err)
	}

	f, err := nfc.NewNeoFoodClub(payload)
	if err != nil {
		log.Fatal(err)
	}
	amount := uint32(*betAmount)
	f.SetBetAmount(&amount)

	p := f.MakeMaxTERBets()
	fmt.Printf("round %d, max-TER portfolio (total ER %.3f):\n\n",
		f.Round(), f.ExpectedReturn(p))
	fmt.Println(format.Portfolio(p))

	odds := f.OddsOf(p)
	fmt.Println(format.Chances(odds.Chances))

	url, err := f.MakeURL(p, true, false)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(url)

	if bustproof := f.MakeBustproofBets(); bustproof != nil {
		fmt.Printf("\nbustproof portfolio:\n\n%s", format.Portfolio(bustproof))
	}
}
