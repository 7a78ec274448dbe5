package i18n

// catalog holds the user-facing message templates per language. English is
// the fallback and must carry every key.
var catalog = map[string]map[string]string{
	"en": {
		// Material display names
		"material.granite":  "granite",
		"material.marble":   "marble",
		"material.quartz":   "quartz",
		"material.sintered": "sintered stone",

		// Leg material display names
		"legmaterial.steel":     "steel",
		"legmaterial.stainless": "stainless steel",
		"legmaterial.aluminum":  "aluminum",
		"legmaterial.oak":       "oak",
		"legmaterial.beech":     "beech",

		// Edge finish display names
		"edge.straight": "straight",
		"edge.beveled":  "beveled",
		"edge.rounded":  "rounded",
		"edge.mitered":  "mitered",

		// Rule messages, user register
		"rule.mat01":     "A %s top must be at least %g mm thick.",
		"rule.mat02":     "A %s top longer than %g mm must be at least %g mm thick.",
		"rule.span01":    "The top spans %g mm unsupported, but this thickness only carries %g mm. Increase the thickness or reduce the top size.",
		"rule.span02":    "A pedestal base carries tops up to %g mm across; this top measures %g mm.",
		"rule.stab01":    "The table is too narrow for its height and could tip. The base needs to measure at least %g mm across.",
		"rule.stab02":    "The pedestal base must be at least %g mm across for a table of this height.",
		"rule.stab03":    "Legs this tall and slim need a stabilizing foot base.",
		"rule.leg01":     "A %s leg of this profile must be at least %g mm.",
		"rule.leg02":     "A wooden leg of this height must be at least %g mm.",
		"rule.leg03":     "The legs are too slim for their height; the profile must be at least %g mm.",
		"rule.leg04":     "A single pedestal only suits round or square tops.",
		"rule.leg05":     "With four or more legs under a curved top, place the legs symmetrically.",
		"rule.hgt01.low":  "The table height of %g mm is below the minimum of %g mm.",
		"rule.hgt01.high": "The table height of %g mm is above the maximum of %g mm.",
		"rule.hgt03":     "The stated total height does not match leg height plus top thickness.",
		"rule.edge01":    "A %s edge needs at least %g mm of material.",
		"rule.comp01":    "The face panels of a %s composite top must be at least %g mm thick.",
		"rule.comp02":    "The composite core is too thin; at least %g mm is required.",
		"rule.comp03":    "With these face panels the total thickness must be at least %g mm.",
		"rule.rad01":     "For this height the base segments must reach at least %g mm from the centre.",
		"rule.rad02":     "A radial base needs at least %d half-cylinder segments.",
		"rule.rad03":     "Each half-cylinder segment must measure at least %g mm across.",

		// Constraint reasons
		"reason.material_min":  "minimum thickness for %s",
		"reason.span":          "span limit for the chosen size and material",
		"reason.pedestal_span": "pedestal span limit",
		"reason.face_min":      "face panel minimum for %s",
		"reason.core_min":      "composite core minimum",
		"reason.edge_min":      "required by the %s edge finish",
		"reason.profile_min":   "profile minimum for the chosen leg",
		"reason.slenderness":   "slenderness limit for the leg height",
		"reason.height_range":  "usable table height range",
		"reason.stability":     "tipping stability for the chosen footprint",
		"reason.radial_spread": "radial base spread for the chosen height",
		"reason.radial_count":  "minimum segment count for a radial base",
		"reason.leg_count":     "supported leg counts",
		"reason.dimension":     "producible dimensions",
	},
	"de": {
		"material.granite":  "Granit",
		"material.marble":   "Marmor",
		"material.quartz":   "Quarzkomposit",
		"material.sintered": "Sinterstein",

		"legmaterial.steel":     "Stahl",
		"legmaterial.stainless": "Edelstahl",
		"legmaterial.aluminum":  "Aluminium",
		"legmaterial.oak":       "Eiche",
		"legmaterial.beech":     "Buche",

		"edge.straight": "gerade",
		"edge.beveled":  "gefast",
		"edge.rounded":  "gerundet",
		"edge.mitered":  "auf Gehrung",

		"rule.mat01":     "Eine Platte aus %s muss mindestens %g mm stark sein.",
		"rule.mat02":     "Eine Platte aus %s mit mehr als %g mm Länge muss mindestens %g mm stark sein.",
		"rule.span01":    "Die Platte überspannt %g mm, diese Stärke trägt aber nur %g mm. Stärke erhöhen oder Platte verkleinern.",
		"rule.span02":    "Ein Säulenfuß trägt Platten bis %g mm Durchmesser; diese Platte misst %g mm.",
		"rule.stab01":    "Der Tisch ist für seine Höhe zu schmal und könnte kippen. Die Standfläche muss mindestens %g mm messen.",
		"rule.stab02":    "Der Säulenfuß muss bei dieser Tischhöhe mindestens %g mm Durchmesser haben.",
		"rule.stab03":    "So hohe, schlanke Beine benötigen einen stabilisierenden Fußteller.",
		"rule.leg01":     "Ein Bein aus %s mit diesem Profil muss mindestens %g mm messen.",
		"rule.leg02":     "Ein Holzbein dieser Höhe muss mindestens %g mm messen.",
		"rule.leg03":     "Die Beine sind für ihre Höhe zu schlank; das Profil muss mindestens %g mm messen.",
		"rule.leg04":     "Ein einzelner Säulenfuß eignet sich nur für runde oder quadratische Platten.",
		"rule.leg05":     "Bei vier oder mehr Beinen unter einer runden Platte die Beine symmetrisch anordnen.",
		"rule.hgt01.low":  "Die Tischhöhe von %g mm liegt unter dem Minimum von %g mm.",
		"rule.hgt01.high": "Die Tischhöhe von %g mm liegt über dem Maximum von %g mm.",
		"rule.hgt03":     "Die angegebene Gesamthöhe entspricht nicht Beinhöhe plus Plattenstärke.",
		"rule.edge01":    "Eine Kante (%s) benötigt mindestens %g mm Material.",
		"rule.comp01":    "Die Deckplatten einer Verbundplatte aus %s müssen mindestens %g mm stark sein.",
		"rule.comp02":    "Der Verbundkern ist zu dünn; mindestens %g mm sind erforderlich.",
		"rule.comp03":    "Mit diesen Deckplatten muss die Gesamtstärke mindestens %g mm betragen.",
		"rule.rad01":     "Bei dieser Höhe müssen die Fußsegmente mindestens %g mm vom Zentrum ausladen.",
		"rule.rad02":     "Ein Radialfuß benötigt mindestens %d Halbzylinder-Segmente.",
		"rule.rad03":     "Jedes Halbzylinder-Segment muss mindestens %g mm messen.",

		"reason.material_min":  "Mindeststärke für %s",
		"reason.span":          "Spannweitengrenze für Größe und Material",
		"reason.pedestal_span": "Spannweitengrenze für Säulenfuß",
		"reason.face_min":      "Deckplatten-Minimum für %s",
		"reason.core_min":      "Minimum des Verbundkerns",
		"reason.edge_min":      "erforderlich für die Kantenbearbeitung (%s)",
		"reason.profile_min":   "Profilminimum für das gewählte Bein",
		"reason.slenderness":   "Schlankheitsgrenze für die Beinhöhe",
		"reason.height_range":  "nutzbarer Tischhöhenbereich",
		"reason.stability":     "Kippstabilität für die gewählte Standfläche",
		"reason.radial_spread": "Ausladung des Radialfußes für die gewählte Höhe",
		"reason.radial_count":  "Mindestanzahl Segmente für einen Radialfuß",
		"reason.leg_count":     "unterstützte Beinanzahl",
		"reason.dimension":     "fertigbare Maße",
	},
}
