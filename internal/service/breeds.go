package service

var dogBreeds = []string{
	"dogBreeds.LabradorRetriever",
	"dogBreeds.GermanShepherd",
	"dogBreeds.GoldenRetriever",
	"dogBreeds.FrenchBulldog",
	"dogBreeds.Bulldog",
	"dogBreeds.Poodle",
	"dogBreeds.Beagle",
	"dogBreeds.Rottweiler",
	"dogBreeds.GermanShorthairedPointer",
	"dogBreeds.YorkshireTerrier",
	"dogBreeds.Boxer",
	"dogBreeds.Dachshund",
	"dogBreeds.PembrokeWelshCorgi",
	"dogBreeds.SiberianHusky",
	"dogBreeds.AustralianShepherd",
	"dogBreeds.GreatDane",
	"dogBreeds.DobermanPinscher",
	"dogBreeds.CavalierKingCharlesSpaniel",
	"dogBreeds.MiniatureSchnauzer",
	"dogBreeds.ShihTzu",
	"dogBreeds.BostonTerrier",
	"dogBreeds.BerneseMountainDog",
	"dogBreeds.Pomeranian",
	"dogBreeds.Havanese",
	"dogBreeds.ShetlandSheepdog",
	"dogBreeds.Brittany",
	"dogBreeds.EnglishSpringerSpaniel",
	"dogBreeds.Pug",
	"dogBreeds.Mastiff",
	"dogBreeds.CockerSpaniel",
	"dogBreeds.Vizsla",
	"dogBreeds.CaneCorso",
	"dogBreeds.Chihuahua",
	"dogBreeds.BorderCollie",
	"dogBreeds.BassetHound",
	"dogBreeds.BelgianMalinois",
	"dogBreeds.WestHighlandWhiteTerrier",
	"dogBreeds.Collie",
	"dogBreeds.Weimaraner",
	"dogBreeds.Newfoundland",
	"dogBreeds.RhodesianRidgeback",
	"dogBreeds.ShibaInu",
	"dogBreeds.BichonFrise",
	"dogBreeds.Akita",
	"dogBreeds.StBernard",
	"dogBreeds.Bloodhound",
	"dogBreeds.ChesapeakeBayRetriever",
	"dogBreeds.Samoyed",
	"dogBreeds.AustralianCattleDog",
	"dogBreeds.Whippet",
}

func Breeds() []string {
	out := make([]string, len(dogBreeds))
	copy(out, dogBreeds)
	return out
}
