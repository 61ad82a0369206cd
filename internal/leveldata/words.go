package leveldata

import "github.com/alexanderramin/lexiplay/internal/domain"

var (
	singular = domain.Singular
	plural   = domain.Plural

	roleSubject = domain.SlotSubject
	roleObject  = domain.SlotObject
	roleLinking = domain.SlotLinkingVerb
)

func article(id, text string) domain.WordEntry {
	return domain.WordEntry{ID: id, Text: text, PartOfSpeech: domain.PosArticle, SemanticTags: []string{"determiner"}}
}

func noun(id, text string, num domain.GrammaticalNumber, tags ...string) domain.WordEntry {
	n := num
	return domain.WordEntry{ID: id, Text: text, PartOfSpeech: domain.PosNoun, Number: &n, SemanticTags: tags}
}

func subjectNoun(id, text string, num domain.GrammaticalNumber, tags ...string) domain.WordEntry {
	w := noun(id, text, num, tags...)
	w.Role = &roleSubject
	return w
}

func objectNoun(id, text string, tags ...string) domain.WordEntry {
	w := domain.WordEntry{ID: id, Text: text, PartOfSpeech: domain.PosNoun, SemanticTags: tags}
	w.Role = &roleObject
	return w
}

func verb(id, text string, agree domain.GrammaticalNumber, tags ...string) domain.WordEntry {
	a := agree
	return domain.WordEntry{ID: id, Text: text, PartOfSpeech: domain.PosVerb, Agreement: &a, SemanticTags: tags}
}

func linkingVerb(id, text string, agree domain.GrammaticalNumber) domain.WordEntry {
	w := verb(id, text, agree, "state")
	w.Role = &roleLinking
	return w
}

func adjective(id, text string, tags ...string) domain.WordEntry {
	return domain.WordEntry{ID: id, Text: text, PartOfSpeech: domain.PosAdjective, SemanticTags: tags}
}

// Shared word cards. Tasks pick from these so the same card keeps the same
// identity across levels.
var (
	wA   = article("art_a", "a")
	wAn  = article("art_an", "an")
	wThe = article("art_the", "the")

	wCat      = noun("n_cat", "cat", singular, "animal", "pet")
	wDog      = noun("n_dog", "dog", singular, "animal", "pet")
	wOwl      = noun("n_owl", "owl", singular, "bird", "animal")
	wElephant = noun("n_elephant", "elephant", singular, "animal", "big")
	wFish     = noun("n_fish", "fish", singular, "water-animal", "animal")
	wBoy      = noun("n_boy", "boy", singular, "person")
	wGirl     = noun("n_girl", "girl", singular, "person")
	wApple    = noun("n_apple", "apple", singular, "food", "fruit")
	wChildren = noun("n_children", "children", plural, "person")
	wPuppies  = noun("n_puppies", "puppies", plural, "animal", "pet")

	wBirds    = subjectNoun("n_birds", "Birds", plural, "bird", "animal")
	wKids     = subjectNoun("n_kids", "Kids", plural, "person")
	wMom      = subjectNoun("n_mom", "Mom", singular, "person")
	wTheSun   = subjectNoun("n_sun", "The sun", singular, "nature")
	wRabbits  = subjectNoun("n_rabbits", "Rabbits", plural, "animal")
	wMyFriend = subjectNoun("n_friend", "My friend", singular, "person")

	wCarrots = objectNoun("n_carrots", "carrots", "food")
	wSoup    = objectNoun("n_soup", "soup", "food")
	wBooks   = objectNoun("n_books", "books", "reading")
	wKite    = objectNoun("n_kite", "a kite", "toy")
	wSongs   = objectNoun("n_songs", "songs", "music")
	wMilk    = objectNoun("n_milk", "milk", "drink")

	wRuns   = verb("v_runs", "runs", singular, "animal-action", "person-action")
	wRun    = verb("v_run", "run", plural, "animal-action", "person-action")
	wSwims  = verb("v_swims", "swims", singular, "water-action")
	wFlies  = verb("v_flies", "flies", singular, "bird-action")
	wFly    = verb("v_fly", "fly", plural, "bird-action")
	wReads  = verb("v_reads", "reads", singular, "reading", "person-action")
	wRead   = verb("v_read", "read", plural, "reading", "person-action")
	wShines = verb("v_shines", "shines", singular, "nature-action")
	wEats   = verb("v_eats", "eats", singular, "eating", "animal-action", "person-action")
	wEat    = verb("v_eat", "eat", plural, "eating", "animal-action", "person-action")
	wDrinks = verb("v_drinks", "drinks", singular, "drinking", "person-action")
	wSings  = verb("v_sings", "sings", singular, "singing", "person-action")
	wSing   = verb("v_sing", "sing", plural, "singing", "person-action")
	wFlyKid = verb("v_fly_kite", "fly", plural, "playing", "person-action")

	wIs  = linkingVerb("lv_is", "is", singular)
	wAre = linkingVerb("lv_are", "are", plural)

	wHappy  = adjective("adj_happy", "happy", "feeling")
	wSleepy = adjective("adj_sleepy", "sleepy", "feeling")
	wHot    = adjective("adj_hot", "hot", "temperature")
	wBright = adjective("adj_bright", "bright", "light")
	wRed    = adjective("adj_red", "red", "color")
	wJuicy  = adjective("adj_juicy", "juicy", "taste")
	wHungry = adjective("adj_hungry", "hungry", "feeling")
	wOld    = adjective("adj_old", "old", "age")
	wLittle = adjective("adj_little", "little", "size")
)
