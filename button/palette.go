package button

// palettes maps every variant and color pair to its semantic palette classes.
var palettes = map[Variant]map[Color]string{
	VariantDefault: {
		ColorDefault: "focus:ring-ring bg-primary focus-visible:bg-primary/90 border-primary text-primary-foreground hover:bg-primary/90 hover:border-transparent",
		ColorError:   "focus:ring-destructive bg-destructive focus-visible:bg-destructive/50 border-destructive text-destructive-foreground hover:bg-destructive/90 hover:border-transparent",
	},
	VariantOutline: {
		ColorDefault: "focus:ring-ring bg-transparent text-primary hover:bg-primary/10 hover:text-accent-foreground",
		ColorError:   "focus:ring-destructive border-destructive/50 bg-transparent text-destructive hover:border-transparent hover:bg-destructive/10 hover:text-destructive",
	},
	VariantSoft: {
		ColorDefault: "focus:ring-ring border border-transparent bg-primary/10 text-primary hover:border hover:border-primary hover:bg-transparent focus:border focus:border-primary focus:bg-transparent",
		ColorError:   "focus:ring-destructive border border-transparent bg-destructive/10 text-destructive hover:border hover:border-destructive hover:bg-transparent focus:border focus:border-destructive focus:bg-transparent",
	},
	VariantGhost: {
		ColorDefault: "focus:ring-ring border-transparent bg-transparent text-primary hover:bg-accent hover:text-accent-foreground focus:border-input focus:bg-transparent",
		ColorError:   "focus:ring-destructive border-transparent bg-transparent text-destructive hover:bg-destructive/10 focus:border-destructive focus:bg-transparent",
	},
	VariantLink: {
		ColorDefault: "focus:ring-ring bg-transparent border-0 hover:bg-transparent text-primary/90 focus:text-primary underline-offset-4 hover:underline focus:ring-0 focus:ring-offset-0",
		ColorError:   "focus:ring-destructive bg-transparent border-0 hover:bg-transparent text-destructive/90 focus:text-destructive underline-offset-4 hover:underline focus:ring-0 focus:ring-offset-0",
	},
}
