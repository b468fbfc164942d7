// Names and codes follow the list published at https://github.com/jonathantneal/color-names.

package names

// builtin is the compiled-in name table. Several names share a hex code; the
// first one listed is the canonical name for that code.
var builtin = []Entry{
	{"absolute zero", "0048ba"},
	{"acid green", "b0bf1a"},
	{"aero", "7cb9e8"},
	{"african violet", "b284be"},
	{"air superiority blue", "72a0c1"},
	{"alabaster", "edeae0"},
	{"alice blue", "f0f8ff"},
	{"alizarin", "db2d43"},
	{"alloy orange", "c46210"},
	{"almond", "efdecd"},
	{"amaranth", "e52b50"},
	{"amaranth pink", "f19cbb"},
	{"amaranth purple", "ab274f"},
	{"amazon", "3b7a57"},
	{"amber", "ffbf00"},
	{"amethyst", "9966cc"},
	{"android green", "3ddc84"},
	{"antique brass", "cd9575"},
	{"antique bronze", "665d1e"},
	{"antique fuchsia", "915c83"},
	{"antique ruby", "841b2d"},
	{"antique white", "faebd7"},
	{"apricot", "fbceb1"},
	{"aqua", "00ffff"},
	{"aquamarine", "7fffd4"},
	{"arctic lime", "d0ff14"},
	{"artichoke green", "4b6f44"},
	{"arylide yellow", "e9d66b"},
	{"ash gray", "b2beb5"},
	{"atomic tangerine", "ff9966"},
	{"aureolin", "fdee00"},
	{"azure", "007fff"},
	{"baby blue", "89cff0"},
	{"baby blue eyes", "a1caf1"},
	{"baby pink", "f4c2c2"},
	{"baby powder", "fefefa"},
	{"baker-miller pink", "ff91af"},
	{"banana mania", "fae7b5"},
	{"barbie pink", "da1884"},
	{"barn red", "7c0a02"},
	{"battleship grey", "848482"},
	{"beau blue", "bcd4e6"},
	{"beaver", "9f8170"},
	{"beige", "f5f5dc"},
	{"b'dazzled blue", "2e5894"},
	{"big dip o'ruby", "9c2542"},
	{"bisque", "ffe4c4"},
	{"bistre", "3d2b1f"},
	{"bittersweet", "fe6f5e"},
	{"bittersweet shimmer", "bf4f51"},
	{"black", "000000"},
	{"black bean", "3d0c02"},
	{"black chocolate", "1b1811"},
	{"black coffee", "3b2f2f"},
	{"black coral", "54626f"},
	{"black olive", "3b3c36"},
	{"black shadows", "bfafb2"},
	{"blanched almond", "ffebcd"},
	{"blast-off bronze", "a57164"},
	{"bleu de france", "318ce7"},
	{"blizzard blue", "ace5ee"},
	{"blood red", "660000"},
	{"blue", "0000ff"},
	{"blue bell", "a2a2d0"},
	{"blue-gray", "6699cc"},
	{"blue jeans", "5dadec"},
	{"blue sapphire", "126180"},
	{"blue-violet", "8a2be2"},
	{"blue yonder", "5072a7"},
	{"bluetiful", "3c69e7"},
	{"blush", "de5d83"},
	{"bole", "79443b"},
	{"bone", "e3dac9"},
	{"brick red", "cb4154"},
	{"bright lilac", "d891ef"},
	{"bright yellow", "ffaa1d"},
	{"bronze", "cd7f32"},
	{"brown sugar", "af6e4d"},
	{"bud green", "7bb661"},
	{"buff", "ffc680"},
	{"burgundy", "800020"},
	{"burlywood", "deb887"},
	{"burnished brown", "a17a74"},
	{"burnt orange", "cc5500"},
	{"burnt sienna", "e97451"},
	{"burnt umber", "8a3324"},
	{"byzantine", "bd33a4"},
	{"byzantium", "702963"},
	{"cadet blue", "5f9ea0"},
	{"cadet grey", "91a3b0"},
	{"cadmium green", "006b3c"},
	{"cadmium orange", "ed872d"},
	{"café au lait", "a67b5b"},
	{"café noir", "4b3621"},
	{"cambridge blue", "a3c1ad"},
	{"camel", "c19a6b"},
	{"cameo pink", "efbbcc"},
	{"canary", "ffff99"},
	{"canary yellow", "ffef00"},
	{"candy pink", "e4717a"},
	{"cardinal", "c41e3a"},
	{"caribbean green", "00cc99"},
	{"carmine", "960018"},
	{"carnation pink", "ffa6c9"},
	{"carnelian", "b31b1b"},
	{"carolina blue", "56a0d3"},
	{"carrot orange", "ed9121"},
	{"catawba", "703642"},
	{"cedar chest", "c95a49"},
	{"celadon", "ace1af"},
	{"celeste", "b2ffff"},
	{"cerise", "de3163"},
	{"cerulean", "007ba7"},
	{"cerulean blue", "2a52be"},
	{"cerulean frost", "6d9bc3"},
	{"champagne", "f7e7ce"},
	{"champagne pink", "f1ddcf"},
	{"charcoal", "36454f"},
	{"chartreuse", "7fff00"},
	{"cherry blossom pink", "ffb7c5"},
	{"chestnut", "954535"},
	{"chili red", "e23d28"},
	{"china pink", "de6fa1"},
	{"chinese red", "aa381e"},
	{"chinese violet", "856088"},
	{"chocolate", "7b3f00"},
	{"chrome yellow", "ffa700"},
	{"cinereous", "98817b"},
	{"cinnabar", "e34234"},
	{"cinnamon satin", "cd607e"},
	{"citrine", "e4d00a"},
	{"citron", "9fa91f"},
	{"claret", "7f1734"},
	{"cobalt blue", "0047ab"},
	{"cocoa brown", "d2691e"},
	{"coffee", "6f4e37"},
	{"columbia blue", "b9d9eb"},
	{"cool grey", "8c92ac"},
	{"copper", "b87333"},
	{"copper penny", "ad6f69"},
	{"copper red", "cb6d51"},
	{"copper rose", "996666"},
	{"coquelicot", "ff3800"},
	{"coral", "ff7f50"},
	{"coral pink", "f88379"},
	{"cordovan", "893f45"},
	{"corn", "fbec5d"},
	{"cornflower blue", "6495ed"},
	{"cornsilk", "fff8dc"},
	{"cosmic latte", "fff8e7"},
	{"cotton candy", "ffbcd9"},
	{"cream", "fffdd0"},
	{"crimson", "dc143c"},
	{"cyan", "00b7eb"},
	{"cyber grape", "58427c"},
	{"cyber yellow", "ffd300"},
	{"cyclamen", "f56fa1"},
	{"dark blue", "00008b"},
	{"dark brown", "654321"},
	{"dark byzantium", "5d3954"},
	{"dark cyan", "008b8b"},
	{"dark goldenrod", "b8860b"},
	{"dark green", "013220"},
	{"dark khaki", "bdb76b"},
	{"dark lava", "483c32"},
	{"dark liver", "534b4f"},
	{"dark magenta", "8b008b"},
	{"dark olive green", "556b2f"},
	{"dark orange", "ff8c00"},
	{"dark orchid", "9932cc"},
	{"dark purple", "301934"},
	{"dark red", "8b0000"},
	{"dark salmon", "e9967a"},
	{"dark sea green", "8fbc8f"},
	{"dark sienna", "3c1414"},
	{"dark sky blue", "8cbed6"},
	{"dark slate blue", "483d8b"},
	{"dark slate gray", "2f4f4f"},
	{"dark spring green", "177245"},
	{"dark turquoise", "00ced1"},
	{"dark violet", "9400d3"},
	{"davy's grey", "555555"},
	{"deep cerise", "da3287"},
	{"deep champagne", "fad6a5"},
	{"deep chestnut", "b94e48"},
	{"deep jungle green", "004b49"},
	{"deep pink", "ff1493"},
	{"deep saffron", "ff9933"},
	{"deep sky blue", "00bfff"},
	{"deep space sparkle", "4a646c"},
	{"deep taupe", "7e5e60"},
	{"denim", "1560bd"},
	{"denim blue", "2243b6"},
	{"desert", "c19a6b"},
	{"desert sand", "edc9af"},
	{"dim gray", "696969"},
	{"dodger blue", "1e90ff"},
	{"dogwood rose", "d71868"},
	{"drab", "967117"},
	{"duke blue", "00009c"},
	{"dutch white", "efdfbb"},
	{"earth yellow", "e1a95f"},
	{"ebony", "555d50"},
	{"ecru", "c2b280"},
	{"eerie black", "1b1b1b"},
	{"eggplant", "614051"},
	{"eggshell", "f0ead6"},
	{"egyptian blue", "1034a6"},
	{"eigengrau", "16161d"},
	{"electric blue", "7df9ff"},
	{"electric indigo", "6f00ff"},
	{"electric lime", "ccff00"},
	{"electric purple", "bf00ff"},
	{"electric violet", "8f00ff"},
	{"emerald", "50c878"},
	{"eminence", "6c3082"},
	{"english green", "1b4d3e"},
	{"english lavender", "b48395"},
	{"english red", "ab4b52"},
	{"english vermillion", "cc474b"},
	{"english violet", "563c5c"},
	{"erin", "00ff40"},
	{"eton blue", "96c8a2"},
	{"fallow", "c19a6b"},
	{"falu red", "801818"},
	{"fandango", "b53389"},
	{"fandango pink", "de5285"},
	{"fawn", "e5aa70"},
	{"fern green", "4f7942"},
	{"field drab", "6c541e"},
	{"fiery rose", "ff5470"},
	{"finn", "683068"},
	{"firebrick", "b22222"},
	{"fire engine red", "ce2029"},
	{"flame", "e25822"},
	{"flax", "eedc82"},
	{"flirt", "a2006d"},
	{"floral white", "fffaf0"},
	{"forest green", "228b22"},
	{"french beige", "a67b5b"},
	{"french bistre", "856d4d"},
	{"french blue", "0072bb"},
	{"french fuchsia", "fd3f92"},
	{"french lilac", "86608e"},
	{"french lime", "9efd38"},
	{"french mauve", "d473d4"},
	{"french pink", "fd6c9e"},
	{"french raspberry", "c72c48"},
	{"french sky blue", "77b5fe"},
	{"french violet", "8806ce"},
	{"frostbite", "e936a7"},
	{"fuchsia", "ff00ff"},
	{"fuchsia purple", "cc397b"},
	{"fulvous", "e48400"},
	{"fuzzy wuzzy", "87421f"},
	{"gainsboro", "dcdcdc"},
	{"gamboge", "e49b0f"},
	{"generic viridian", "007f66"},
	{"ghost white", "f8f8ff"},
	{"glaucous", "6082b6"},
	{"glossy grape", "ab92b3"},
	{"go green", "00ab66"},
	{"gold", "ffd700"},
	{"golden brown", "996515"},
	{"golden poppy", "fcc200"},
	{"golden yellow", "ffdf00"},
	{"goldenrod", "daa520"},
	{"granite gray", "676767"},
	{"granny smith apple", "a8e4a0"},
	{"gray", "808080"},
	{"green", "00ff00"},
	{"green-blue", "1164b4"},
	{"green-cyan", "009966"},
	{"green lizard", "a7f432"},
	{"green sheen", "6eaea1"},
	{"green-yellow", "adff2f"},
	{"grullo", "a99a86"},
	{"gunmetal", "2a3439"},
	{"han blue", "446ccf"},
	{"han purple", "5218fa"},
	{"hansa yellow", "e9d66b"},
	{"harlequin", "3fff00"},
	{"harvest gold", "da9100"},
	{"heat wave", "ff7a00"},
	{"heliotrope", "df73ff"},
	{"heliotrope gray", "aa98a9"},
	{"hollywood cerise", "f400a1"},
	{"honeydew", "f0fff0"},
	{"honolulu blue", "006db0"},
	{"hooker's green", "49796b"},
	{"hot magenta", "ff1dce"},
	{"hot pink", "ff69b4"},
	{"hunter green", "355e3b"},
	{"iceberg", "71a6d2"},
	{"icterine", "fcf75e"},
	{"illuminating emerald", "319177"},
	{"imperial red", "ed2939"},
	{"inchworm", "b2ec5d"},
	{"independence", "4c516d"},
	{"india green", "138808"},
	{"indian red", "cd5c5c"},
	{"indian yellow", "e3a857"},
	{"indigo", "4b0082"},
	{"indigo dye", "00416a"},
	{"international klein blue", "130a8f"},
	{"international orange", "ff4f00"},
	{"iris", "5a4fcf"},
	{"irresistible", "b3446c"},
	{"isabelline", "f4f0ec"},
	{"italian sky blue", "b2ffff"},
	{"ivory", "fffff0"},
	{"jade", "00a86b"},
	{"japanese carmine", "9d2933"},
	{"japanese violet", "5b3256"},
	{"jasmine", "f8de7e"},
	{"jazzberry jam", "a50b5e"},
	{"jet", "343434"},
	{"jonquil", "f4ca16"},
	{"june bud", "bdda57"},
	{"jungle green", "29ab87"},
	{"kelly green", "4cbb17"},
	{"keppel", "3ab09e"},
	{"key lime", "e8f48c"},
	{"khaki", "c3b091"},
	{"kobe", "882d17"},
	{"kobi", "e79fc4"},
	{"kobicha", "6b4423"},
	{"ksu purple", "512888"},
	{"languid lavender", "d6cadd"},
	{"lapis lazuli", "26619c"},
	{"laser lemon", "ffff66"},
	{"laurel green", "a9ba9d"},
	{"lava", "cf1020"},
	{"lavender", "e6e6fa"},
	{"lavender blush", "fff0f5"},
	{"lavender gray", "c4c3d0"},
	{"lawn green", "7cfc00"},
	{"lemon", "fff700"},
	{"lemon chiffon", "fffacd"},
	{"lemon curry", "cca01d"},
	{"lemon glacier", "fdff00"},
	{"lemon meringue", "f6eabe"},
	{"lemon yellow", "fff44f"},
	{"liberty", "545aa7"},
	{"light blue", "add8e6"},
	{"light coral", "f08080"},
	{"light cornflower blue", "93ccea"},
	{"light cyan", "e0ffff"},
	{"light french beige", "c8ad7f"},
	{"light goldenrod yellow", "fafad2"},
	{"light gray", "d3d3d3"},
	{"light green", "90ee90"},
	{"light orange", "fed8b1"},
	{"light periwinkle", "c5cbe1"},
	{"light pink", "ffb6c1"},
	{"light salmon", "ffa07a"},
	{"light sea green", "20b2aa"},
	{"light sky blue", "87cefa"},
	{"light slate gray", "778899"},
	{"light steel blue", "b0c4de"},
	{"light yellow", "ffffe0"},
	{"lilac", "c8a2c8"},
	{"lilac luster", "ae98aa"},
	{"lime", "bfff00"},
	{"lime green", "32cd32"},
	{"lincoln green", "195905"},
	{"linen", "faf0e6"},
	{"lion", "c19a6b"},
	{"liver", "674c47"},
	{"liver chestnut", "987456"},
	{"livid", "6699cc"},
	{"macaroni and cheese", "ffbd88"},
	{"madder lake", "cc3336"},
	{"magenta", "ff00ff"},
	{"magenta haze", "9f4576"},
	{"magic mint", "aaf0d1"},
	{"magnolia", "f2e8d7"},
	{"mahogany", "c04000"},
	{"maize", "fbec5d"},
	{"majorelle blue", "6050dc"},
	{"malachite", "0bda51"},
	{"manatee", "979aaa"},
	{"mandarin", "f37a48"},
	{"mango", "fdbe02"},
	{"mango tango", "ff8243"},
	{"mantis", "74c365"},
	{"mardi gras", "880085"},
	{"marigold", "eaa221"},
	{"maroon", "800000"},
	{"mauve", "e0b0ff"},
	{"mauve taupe", "915f6d"},
	{"mauvelous", "ef98aa"},
	{"maximum blue", "47abcc"},
	{"maximum blue green", "30bfbf"},
	{"maximum blue purple", "acace6"},
	{"maximum green", "5e8c31"},
	{"maximum green yellow", "d9e650"},
	{"maximum purple", "733380"},
	{"maximum red", "d92121"},
	{"maximum red purple", "a63a79"},
	{"maximum yellow", "fafa37"},
	{"maximum yellow red", "f2ba49"},
	{"may green", "4c9141"},
	{"maya blue", "73c2fb"},
	{"medium aquamarine", "66ddaa"},
	{"medium blue", "0000cd"},
	{"medium candy apple red", "e2062c"},
	{"medium carmine", "af4035"},
	{"medium champagne", "f3e5ab"},
	{"medium orchid", "ba55d3"},
	{"medium purple", "9370db"},
	{"medium sea green", "3cb371"},
	{"medium slate blue", "7b68ee"},
	{"medium spring green", "00fa9a"},
	{"medium turquoise", "48d1cc"},
	{"medium violet-red", "c71585"},
	{"mellow apricot", "f8b878"},
	{"mellow yellow", "f8de7e"},
	{"melon", "febaad"},
	{"metallic gold", "d3af37"},
	{"metallic seaweed", "0a7e8c"},
	{"metallic sunburst", "9c7c38"},
	{"mexican pink", "e4007c"},
	{"middle blue", "7ed4e6"},
	{"middle blue green", "8dd9cc"},
	{"middle blue purple", "8b72be"},
	{"middle green", "4d8c57"},
	{"middle green yellow", "acbf60"},
	{"middle grey", "8b8680"},
	{"middle purple", "d982b5"},
	{"middle red", "e58e73"},
	{"middle red purple", "a55353"},
	{"middle yellow", "ffeb00"},
	{"middle yellow red", "ecb176"},
	{"midnight", "702670"},
	{"midnight blue", "191970"},
	{"midnight green", "004953"},
	{"mikado yellow", "ffc40c"},
	{"mimi pink", "ffdae9"},
	{"mindaro", "e3f988"},
	{"ming", "36747d"},
	{"minion yellow", "f5e050"},
	{"mint", "3eb489"},
	{"mint cream", "f5fffa"},
	{"mint green", "98ff98"},
	{"misty moss", "bbb477"},
	{"misty rose", "ffe4e1"},
	{"mode beige", "967117"},
	{"morning blue", "8da399"},
	{"moss green", "8a9a5b"},
	{"mountain meadow", "30ba8f"},
	{"mountbatten pink", "997a8d"},
	{"msu green", "18453b"},
	{"mulberry", "c54b8c"},
	{"mustard", "ffdb58"},
	{"myrtle green", "317873"},
	{"mystic", "d65282"},
	{"mystic maroon", "ad4379"},
	{"nadeshiko pink", "f6adc6"},
	{"naples yellow", "fada5e"},
	{"navajo white", "ffdead"},
	{"navy blue", "000080"},
	{"neon blue", "4666ff"},
	{"neon carrot", "ffa343"},
	{"neon fuchsia", "fe4164"},
	{"neon green", "39ff14"},
	{"new york pink", "d7837f"},
	{"nickel", "727472"},
	{"non-photo blue", "a4dded"},
	{"nyanza", "e9ffdb"},
	{"ochre", "cc7722"},
	{"old burgundy", "43302e"},
	{"old gold", "cfb53b"},
	{"old lace", "fdf5e6"},
	{"old lavender", "796878"},
	{"old mauve", "673147"},
	{"old rose", "c08081"},
	{"old silver", "848482"},
	{"olive", "808000"},
	{"olive drab", "6b8e23"},
	{"olive green", "b5b35c"},
	{"olivine", "9ab973"},
	{"onyx", "353839"},
	{"opal", "a8c3bc"},
	{"opera mauve", "b784a7"},
	{"orange", "ff7f00"},
	{"orange peel", "ff9f00"},
	{"orange-red", "ff4500"},
	{"orange soda", "fa5b3d"},
	{"orange-yellow", "f5bd1f"},
	{"orchid", "da70d6"},
	{"orchid pink", "f2bdcd"},
	{"outer space", "414a4c"},
	{"outrageous orange", "ff6e4a"},
	{"oxblood", "4a0000"},
	{"oxford blue", "002147"},
	{"ou crimson red", "841617"},
	{"pacific blue", "1ca9c9"},
	{"pakistan green", "006600"},
	{"palatinate purple", "682860"},
	{"pale aqua", "bcd4e6"},
	{"pale cerulean", "9bc4e2"},
	{"pale dogwood", "ed7a9b"},
	{"pale pink", "fadadd"},
	{"pale purple", "fae6fa"},
	{"pale spring bud", "ecebbd"},
	{"pansy purple", "78184a"},
	{"paolo veronese green", "009b7d"},
	{"papaya whip", "ffefd5"},
	{"paradise pink", "e63e62"},
	{"parchment", "f1e9d2"},
	{"paris green", "50c878"},
	{"pastel pink", "dea5a4"},
	{"patriarch", "800080"},
	{"paua", "1f005e"},
	{"payne's grey", "536878"},
	{"peach", "ffe5b4"},
	{"peach puff", "ffdab9"},
	{"pear", "d1e231"},
	{"pearly purple", "b768a2"},
	{"periwinkle", "ccccff"},
	{"permanent geranium lake", "e12c2c"},
	{"persian blue", "1c39bb"},
	{"persian green", "00a693"},
	{"persian indigo", "32127a"},
	{"persian orange", "d99058"},
	{"persian pink", "f77fbe"},
	{"persian plum", "701c1c"},
	{"persian red", "cc3333"},
	{"persian rose", "fe28a2"},
	{"persimmon", "ec5800"},
	{"pewter blue", "8ba8b7"},
	{"phlox", "df00ff"},
	{"phthalo blue", "000f89"},
	{"phthalo green", "123524"},
	{"picotee blue", "2e2787"},
	{"pictorial carmine", "c30b4e"},
	{"piggy pink", "fddde6"},
	{"pine green", "01796f"},
	{"pine tree", "2a2f23"},
	{"pink", "ffc0cb"},
	{"pink flamingo", "fc74fd"},
	{"pink lace", "ffddf4"},
	{"pink lavender", "d8b2d1"},
	{"pink sherbet", "f78fa7"},
	{"pistachio", "93c572"},
	{"platinum", "e5e4e2"},
	{"plum", "8e4585"},
	{"plump purple", "5946b2"},
	{"polished pine", "5da493"},
	{"pomp and power", "86608e"},
	{"popstar", "be4f62"},
	{"portland orange", "ff5a36"},
	{"powder blue", "b0e0e6"},
	{"princeton orange", "f58025"},
	{"process yellow", "ffef00"},
	{"prune", "701c1c"},
	{"prussian blue", "003153"},
	{"psychedelic purple", "df00ff"},
	{"puce", "cc8899"},
	{"pullman brown", "644117"},
	{"pumpkin", "ff7518"},
	{"purple", "6a0dad"},
	{"purple mountain majesty", "9678b6"},
	{"purple navy", "4e5180"},
	{"purple pizzazz", "fe4eda"},
	{"purple plum", "9c51b6"},
	{"purpureus", "9a4eae"},
	{"queen blue", "436b95"},
	{"queen pink", "e8ccd7"},
	{"quick silver", "a6a6a6"},
	{"quinacridone magenta", "8e3a59"},
	{"radical red", "ff355e"},
	{"raisin black", "242124"},
	{"rajah", "fbab60"},
	{"raspberry", "e30b5d"},
	{"raspberry glace", "915f6d"},
	{"raspberry rose", "b3446c"},
	{"raw sienna", "d68a59"},
	{"raw umber", "826644"},
	{"razzle dazzle rose", "ff33cc"},
	{"razzmatazz", "e3256b"},
	{"razzmic berry", "8d4e85"},
	{"rebecca purple", "663399"},
	{"red", "ff0000"},
	{"red-orange", "ff5349"},
	{"red-purple", "e40078"},
	{"red salsa", "fd3a4a"},
	{"red-violet", "c71585"},
	{"redwood", "a45a52"},
	{"resolution blue", "002387"},
	{"rhythm", "777696"},
	{"rich black", "004040"},
	{"rifle green", "444c38"},
	{"robin egg blue", "00cccc"},
	{"rocket metallic", "8a7f80"},
	{"rojo spanish red", "a91101"},
	{"roman silver", "838996"},
	{"rose", "ff007f"},
	{"rose bonbon", "f9429e"},
	{"rose dust", "9e5e6f"},
	{"rose ebony", "674846"},
	{"rose madder", "e32636"},
	{"rose pink", "ff66cc"},
	{"rose pompadour", "ed7a9b"},
	{"rose red", "c21e56"},
	{"rose taupe", "905d5d"},
	{"rose vale", "ab4e52"},
	{"rosewood", "65000b"},
	{"rosso corsa", "d40000"},
	{"rosy brown", "bc8f8f"},
	{"royal blue", "4169e1"},
	{"royal purple", "7851a9"},
	{"royal yellow", "fada5e"},
	{"ruber", "ce4676"},
	{"rubine red", "d10056"},
	{"ruby", "e0115f"},
	{"ruby red", "9b111e"},
	{"rufous", "a81c07"},
	{"russet", "80461b"},
	{"russian green", "679267"},
	{"russian violet", "32174d"},
	{"rust", "b7410e"},
	{"rusty red", "da2c43"},
	{"sacramento state green", "043927"},
	{"saddle brown", "8b4513"},
	{"safety orange", "ff7800"},
	{"safety yellow", "eed202"},
	{"saffron", "f4c430"},
	{"sage", "bcb88a"},
	{"st. patrick's blue", "23297a"},
	{"salmon", "fa8072"},
	{"salmon pink", "ff91a4"},
	{"sand", "c2b280"},
	{"sand dune", "967117"},
	{"sandy brown", "f4a460"},
	{"sap green", "507d2a"},
	{"sapphire", "0f52ba"},
	{"sapphire blue", "0067a5"},
	{"satin sheen gold", "cba135"},
	{"scarlet", "ff2400"},
	{"school bus yellow", "ffd800"},
	{"screamin' green", "66ff66"},
	{"sea green", "2e8b57"},
	{"sea green crayola", "00ffcd"},
	{"seal brown", "59260b"},
	{"seashell", "fff5ee"},
	{"selective yellow", "ffba00"},
	{"sepia", "704214"},
	{"shadow", "8a795d"},
	{"shadow blue", "778ba5"},
	{"shamrock green", "009e60"},
	{"sheen green", "8fd400"},
	{"shimmering blush", "d98695"},
	{"shiny shamrock", "5fa778"},
	{"shocking pink", "fc0fc0"},
	{"sienna", "882d17"},
	{"silver", "c0c0c0"},
	{"silver chalice", "acacac"},
	{"silver pink", "c4aead"},
	{"silver sand", "bfc1c2"},
	{"sinopia", "cb410b"},
	{"sizzling red", "ff3855"},
	{"sizzling sunrise", "ffdb00"},
	{"skobeloff", "007474"},
	{"sky blue", "87ceeb"},
	{"sky magenta", "cf71af"},
	{"slate blue", "6a5acd"},
	{"slate gray", "708090"},
	{"slimy green", "299617"},
	{"smitten", "c84186"},
	{"smoky black", "100c08"},
	{"snow", "fffafa"},
	{"solid pink", "893843"},
	{"sonic silver", "757575"},
	{"space cadet", "1d2951"},
	{"spanish bistre", "807532"},
	{"spanish blue", "0070b8"},
	{"spanish carmine", "d10047"},
	{"spanish gray", "989898"},
	{"spanish green", "009150"},
	{"spanish orange", "e86100"},
	{"spanish pink", "f7bfbe"},
	{"spanish red", "e60026"},
	{"spanish sky blue", "00ffff"},
	{"spanish violet", "4c2882"},
	{"spanish viridian", "007f5c"},
	{"spring bud", "a7fc00"},
	{"spring frost", "87ff2a"},
	{"spring green", "00ff7f"},
	{"star command blue", "007bb8"},
	{"steel blue", "4682b4"},
	{"steel pink", "cc33cc"},
	{"stil de grain yellow", "fada5e"},
	{"straw", "e4d96f"},
	{"strawberry", "fa5053"},
	{"strawberry blonde", "ff9361"},
	{"sugar plum", "914e75"},
	{"sunglow", "ffcc33"},
	{"sunray", "e3ab57"},
	{"sunset", "fad6a5"},
	{"super pink", "cf6ba9"},
	{"sweet brown", "a83731"},
	{"syracuse orange", "d44500"},
	{"tan", "d2b48c"},
	{"tangerine", "f28500"},
	{"tango pink", "e4717a"},
	{"tart orange", "fb4d46"},
	{"taupe", "483c32"},
	{"taupe gray", "8b8589"},
	{"tea green", "d0f0c0"},
	{"tea rose", "f88379"},
	{"teal", "008080"},
	{"teal blue", "367588"},
	{"telemagenta", "cf3476"},
	{"terra cotta", "e2725b"},
	{"thistle", "d8bfd8"},
	{"thulian pink", "de6fa1"},
	{"tickle me pink", "fc89ac"},
	{"tiffany blue", "0abab5"},
	{"timberwolf", "dbd7d2"},
	{"titanium yellow", "eee600"},
	{"tomato", "ff6347"},
	{"tourmaline", "86a1a9"},
	{"tropical rainforest", "00755e"},
	{"true blue", "0073cf"},
	{"trypan blue", "1c05b3"},
	{"tufts blue", "3e8ede"},
	{"tumbleweed", "deaa88"},
	{"turquoise", "40e0d0"},
	{"turquoise blue", "00ffef"},
	{"turquoise green", "a0d6b4"},
	{"turtle green", "8a9a5b"},
	{"tuscan", "fad6a5"},
	{"tuscan brown", "6f4e37"},
	{"tuscan red", "7c4848"},
	{"tuscan tan", "a67b5b"},
	{"tuscany", "c09999"},
	{"twilight lavender", "8a496b"},
	{"tyrian purple", "66023c"},
	{"ua blue", "0033aa"},
	{"ua red", "d9004c"},
	{"ultramarine", "3f00ff"},
	{"ultramarine blue", "4166f5"},
	{"ultra pink", "ff6fff"},
	{"ultra red", "fc6c85"},
	{"umber", "635147"},
	{"unbleached silk", "ffddca"},
	{"united nations blue", "5b92e5"},
	{"unmellow yellow", "ffff66"},
	{"up forest green", "014421"},
	{"up maroon", "7b1113"},
	{"upsdell red", "ae2029"},
	{"uranian blue", "afdbf5"},
	{"usafa blue", "004f98"},
	{"van dyke brown", "664228"},
	{"vanilla", "f3e5ab"},
	{"vanilla ice", "f38fa9"},
	{"vegas gold", "c5b358"},
	{"venetian red", "c80815"},
	{"verdigris", "43b3ae"},
	{"vermilion", "e34234"},
	{"veronica", "a020f0"},
	{"violet", "8f00ff"},
	{"violet-blue", "324ab2"},
	{"violet-red", "f75394"},
	{"viridian", "40826d"},
	{"viridian green", "009698"},
	{"vivid burgundy", "9f1d35"},
	{"vivid sky blue", "00ccff"},
	{"vivid tangerine", "ffa089"},
	{"vivid violet", "9f00ff"},
	{"volt", "ceff00"},
	{"warm black", "004242"},
	{"weldon blue", "7c98ab"},
	{"wenge", "645452"},
	{"wheat", "f5deb3"},
	{"white", "ffffff"},
	{"white smoke", "f5f5f5"},
	{"wild blue yonder", "a2add0"},
	{"wild orchid", "d470a2"},
	{"wild strawberry", "ff43a4"},
	{"wild watermelon", "fc6c85"},
	{"windsor tan", "a75502"},
	{"wine", "722f37"},
	{"wine dregs", "673147"},
	{"winter sky", "ff007c"},
	{"wintergreen dream", "56887d"},
	{"wisteria", "c9a0dc"},
	{"wood brown", "c19a6b"},
	{"xanadu", "738678"},
	{"xanthic", "eeed09"},
	{"xanthous", "f1b42f"},
	{"yale blue", "0f4d92"},
	{"yellow", "ffff00"},
	{"yellow-green", "9acd32"},
	{"yellow orange", "ffae42"},
	{"yellow sunshine", "fff600"},
	{"yinmn blue", "2e5090"},
	{"zaffre", "0014a8"},
	{"zomp", "39a78e"},
}
